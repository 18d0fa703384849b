package evaluationlinehandler

import (
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	evaluationlinestore "hr-evaluation-backend/lib/evaluation-line/line-store"
	evaluationlinemappingstore "hr-evaluation-backend/lib/evaluation-line/store"
	evaluationperiodstore "hr-evaluation-backend/lib/evaluation-period/store"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

// EmployeeDirectory источник руководителя сотрудника
type EmployeeDirectory interface {
	GetManagerID(employeeID string) (*string, error)
}

// ProjectDirectory источник руководителя проекта
type ProjectDirectory interface {
	GetProjectManagerID(projectID string) (*string, error)
}

// Provider построение и чтение линий оценки (кто кого оценивает)
type Provider interface {
	ResolvePrimary(employeeID, periodID string) error
	ResolveSecondary(employeeID, wbsItemID, projectID, periodID string) error
	RemoveSecondary(employeeID, wbsItemID, periodID string) error
	GetPrimaryEvaluator(periodID, employeeID string) (evaluatorID string, found bool, err error)
	ListSecondaryEvaluators(periodID, employeeID string) ([]string, error)
	CheckEvaluatorLine(periodID, employeeID, evaluatorID string, claimed models.EvaluatorType, wbsItemID *string) (holds bool, actual *models.EvaluatorType, err error)
	Get(periodID, employeeID string) (evaluationapimodels.EvaluationLineView, error)
	ListEmployeeIDs(periodID string) ([]string, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB, employeeprovider.Instance, projectprovider.Instance)
}

func NewHandlerWithTx(tx *gorm.DB, employees EmployeeDirectory, projects ProjectDirectory) Provider {
	instance := impl{
		mappingStore: evaluationlinemappingstore.NewInstance(tx),
		lineStore:    evaluationlinestore.NewInstance(tx),
		periodStore:  evaluationperiodstore.NewInstance(tx),
		employees:    employees,
		projects:     projects,
	}
	initchecker.CheckInit(
		"employees", instance.employees,
		"projects", instance.projects,
	)
	return instance
}

type impl struct {
	mappingStore evaluationlinemappingstore.Provider
	lineStore    evaluationlinestore.Provider
	periodStore  evaluationperiodstore.Provider
	employees    EmployeeDirectory
	projects     ProjectDirectory
}

func (i impl) getLogger(periodID, employeeID string) *log.Entry {
	return log.
		WithField("period_id", periodID).
		WithField("employee_id", employeeID)
}

func (i impl) ResolvePrimary(employeeID, periodID string) error {
	logger := i.getLogger(periodID, employeeID)
	if err := i.checkPeriod(periodID); err != nil {
		return err
	}
	managerID, err := i.employees.GetManagerID(employeeID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения руководителя сотрудника")
	}
	if managerID == nil {
		logger.Debug("у сотрудника нет руководителя, первая линия оценки не назначается")
		return nil
	}
	return i.upsert(periodID, employeeID, nil, *managerID, models.EvaluatorTypePrimary)
}

func (i impl) ResolveSecondary(employeeID, wbsItemID, projectID, periodID string) error {
	logger := i.getLogger(periodID, employeeID).
		WithField("wbs_item_id", wbsItemID).
		WithField("project_id", projectID)
	if err := i.checkPeriod(periodID); err != nil {
		return err
	}
	// сотрудник обязан существовать, даже если руководителя проекта нет
	if _, err := i.employees.GetManagerID(employeeID); err != nil {
		return errors.Wrap(err, "ошибка проверки сотрудника")
	}
	pmID, err := i.projects.GetProjectManagerID(projectID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения руководителя проекта")
	}
	if pmID == nil {
		logger.Debug("у проекта нет руководителя, вторая линия оценки не назначается")
		return nil
	}
	wbs := wbsItemID
	return i.upsert(periodID, employeeID, &wbs, *pmID, models.EvaluatorTypeSecondary)
}

// upsert поиск по (период, сотрудник, wbs) и перезапись оценщика, дубликаты не создаются
func (i impl) upsert(periodID, employeeID string, wbsItemID *string, evaluatorID string, evaluatorType models.EvaluatorType) error {
	logger := i.getLogger(periodID, employeeID).
		WithField("evaluator_id", evaluatorID).
		WithField("evaluator_type", evaluatorType)
	line, err := i.lineStore.FindOrCreate(evaluatorType)
	if err != nil {
		return err
	}
	existed, err := i.mappingStore.FindByKey(periodID, employeeID, wbsItemID)
	if err != nil {
		return err
	}
	if existed != nil {
		if existed.EvaluatorID == evaluatorID && existed.EvaluationLineID == line.ID {
			return nil
		}
		updMap := map[string]interface{}{
			"evaluator_id":       evaluatorID,
			"evaluation_line_id": line.ID,
		}
		if err = i.mappingStore.Update(existed.ID, updMap); err != nil {
			return errors.Wrap(err, "ошибка обновления линии оценки")
		}
		logger.
			WithField("previous_evaluator_id", existed.EvaluatorID).
			Info("обновлен оценщик в линии оценки")
		return nil
	}
	rec := dbmodels.EvaluationLineMapping{
		BasePeriodModel: dbmodels.BasePeriodModel{
			PeriodID:   periodID,
			EmployeeID: employeeID,
		},
		EvaluatorID:      evaluatorID,
		WbsItemID:        wbsItemID,
		EvaluationLineID: line.ID,
	}
	if _, err = i.mappingStore.Create(rec); err != nil {
		return errors.Wrap(err, "ошибка создания линии оценки")
	}
	logger.Info("назначен оценщик")
	return nil
}

func (i impl) RemoveSecondary(employeeID, wbsItemID, periodID string) error {
	existed, err := i.mappingStore.FindByKey(periodID, employeeID, &wbsItemID)
	if err != nil {
		return err
	}
	if existed == nil {
		return nil
	}
	if err = i.mappingStore.Delete(existed.ID); err != nil {
		return errors.Wrap(err, "ошибка удаления линии оценки")
	}
	i.getLogger(periodID, employeeID).
		WithField("wbs_item_id", wbsItemID).
		Info("удалена вторая линия оценки по WBS")
	return nil
}

func (i impl) GetPrimaryEvaluator(periodID, employeeID string) (string, bool, error) {
	rec, err := i.mappingStore.FindByKey(periodID, employeeID, nil)
	if err != nil {
		return "", false, err
	}
	if rec == nil {
		return "", false, nil
	}
	return rec.EvaluatorID, true, nil
}

// ListSecondaryEvaluators уникальные оценщики второй линии в порядке назначения
func (i impl) ListSecondaryEvaluators(periodID, employeeID string) ([]string, error) {
	list, err := i.mappingStore.ListByEmployee(periodID, employeeID)
	if err != nil {
		return nil, err
	}
	result := []string{}
	seen := map[string]struct{}{}
	for _, rec := range list {
		if rec.WbsItemID == nil {
			continue
		}
		if _, exist := seen[rec.EvaluatorID]; exist {
			continue
		}
		seen[rec.EvaluatorID] = struct{}{}
		result = append(result, rec.EvaluatorID)
	}
	return result, nil
}

// CheckEvaluatorLine подтверждает заявленную линию: первая линия - слот без WBS, вторая - связь по wbsItemID.
// Если заявленная линия не подтверждена, actual - тип другой линии оценщика (nil - оценщик не назначен)
func (i impl) CheckEvaluatorLine(periodID, employeeID, evaluatorID string, claimed models.EvaluatorType, wbsItemID *string) (holds bool, actual *models.EvaluatorType, err error) {
	list, err := i.mappingStore.ListByEvaluator(periodID, employeeID, evaluatorID)
	if err != nil {
		return false, nil, err
	}
	for _, rec := range list {
		evaluatorType, err := i.getLineType(rec.EvaluationLineID)
		if err != nil {
			return false, nil, err
		}
		if evaluatorType == claimed && slotMatches(rec, claimed, wbsItemID) {
			return true, &evaluatorType, nil
		}
		if actual == nil {
			actual = &evaluatorType
		}
	}
	return false, actual, nil
}

func (i impl) getLineType(lineID string) (models.EvaluatorType, error) {
	line, err := i.lineStore.GetByID(lineID)
	if err != nil {
		return "", err
	}
	if line == nil {
		return "", apperrors.NewNotFound("линия оценки", lineID)
	}
	return line.EvaluatorType, nil
}

func slotMatches(rec dbmodels.EvaluationLineMapping, claimed models.EvaluatorType, wbsItemID *string) bool {
	if claimed == models.EvaluatorTypePrimary {
		return rec.WbsItemID == nil
	}
	return wbsItemID != nil && rec.WbsItemID != nil && *rec.WbsItemID == *wbsItemID
}

func (i impl) Get(periodID, employeeID string) (evaluationapimodels.EvaluationLineView, error) {
	view := evaluationapimodels.EvaluationLineView{
		PeriodID:   periodID,
		EmployeeID: employeeID,
		Mappings:   []evaluationapimodels.EvaluationLineMappingView{},
	}
	list, err := i.mappingStore.ListByEmployee(periodID, employeeID)
	if err != nil {
		return view, err
	}
	for _, rec := range list {
		evaluatorType := models.EvaluatorTypePrimary
		if rec.WbsItemID != nil {
			evaluatorType = models.EvaluatorTypeSecondary
		}
		view.Mappings = append(view.Mappings, evaluationapimodels.EvaluationLineMappingView{
			ID:            rec.ID,
			EmployeeID:    rec.EmployeeID,
			EvaluatorID:   rec.EvaluatorID,
			EvaluatorType: evaluatorType,
			WbsItemID:     rec.WbsItemID,
		})
	}
	sort.SliceStable(view.Mappings, func(a, b int) bool {
		return view.Mappings[a].WbsItemID == nil && view.Mappings[b].WbsItemID != nil
	})
	return view, nil
}

func (i impl) ListEmployeeIDs(periodID string) ([]string, error) {
	return i.mappingStore.ListEmployeeIDs(periodID)
}

func (i impl) checkPeriod(periodID string) error {
	rec, err := i.periodStore.GetByID(periodID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("период оценки", periodID)
	}
	return nil
}
