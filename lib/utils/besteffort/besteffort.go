// Package besteffort выполняет вспомогательные операции (журнал действий, автозакрытие запросов
// на доработку, уведомления), ошибка которых не должна прерывать основную операцию.
package besteffort

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Run выполняет fn, ошибку и панику пишет в лог с уровнем warn и никогда не возвращает
func Run(logger *log.Entry, action string, fn func() error) (ok bool) {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("action", action).
				WithField("panic", fmt.Sprintf("%v", r)).
				Warn("Вспомогательная операция завершилась паникой, пропускаем")
			ok = false
		}
	}()
	if err := fn(); err != nil {
		logger.
			WithField("action", action).
			WithError(err).
			Warn("Вспомогательная операция завершилась ошибкой, пропускаем")
		return false
	}
	return true
}
