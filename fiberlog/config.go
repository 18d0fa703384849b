package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки логирования запросов: Logger nil - глобальный logrus, Tags - поля записи из tags.go
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is the default config
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagUserID,
	},
}
