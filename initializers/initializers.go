package initializers

import (
	"hr-evaluation-backend/config"
	"hr-evaluation-backend/fiberlog"
	activityloghandler "hr-evaluation-backend/lib/activity-log"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	evaluationperiodhandler "hr-evaluation-backend/lib/evaluation-period"
	evaluationstatushandler "hr-evaluation-backend/lib/evaluation-status"
	evaluationsubmissionhandler "hr-evaluation-backend/lib/evaluation-submission"
	xlsexport "hr-evaluation-backend/lib/export/xls"
	"hr-evaluation-backend/lib/notification"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	revisionrequesthandler "hr-evaluation-backend/lib/revision-request"
	"hr-evaluation-backend/lib/settings"
	stepapprovalhandler "hr-evaluation-backend/lib/step-approval"
	wbsassignmenthandler "hr-evaluation-backend/lib/wbs-assignment"
)

var LoggerConfig *fiberlog.Config

// InitAllServices порядок важен: обработчики получают зависимости через Instance уже созданных
func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	settings.NewHandler(config.Conf.Evaluation.DefaultGradeRanges)
	employeeprovider.NewHandler()
	projectprovider.NewHandler()
	evaluationlinehandler.NewHandler()
	evaluationperiodhandler.NewHandler()
	activityloghandler.NewHandler()
	revisionrequesthandler.NewHandler()
	performanceevaluationhandler.NewHandler()
	notification.NewHandler()
	stepapprovalhandler.NewHandler()
	evaluationsubmissionhandler.NewHandler()
	wbsassignmenthandler.NewHandler()
	evaluationstatushandler.NewHandler()
	xlsexport.NewHandler()
}
