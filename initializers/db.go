package initializers

import (
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	"hr-evaluation-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(); err != nil {
		log.WithError(err).Error("БД не отвечает")
		panic(err.Error())
	}

	db.InitPreload()
}
