// Package settings процессные настройки сервиса оценки. Диапазоны оценок по умолчанию задаются
// из конфигурации при старте и сбрасываются явным вызовом Reset (в тестах).
package settings

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	DefaultGradeRanges() dbmodels.GradeRanges
	SetDefaultGradeRanges(ranges dbmodels.GradeRanges) error
	Reset()
}

var Instance Provider

var BuiltinGradeRanges = dbmodels.GradeRanges{
	{Grade: "S", MinRange: 95, MaxRange: 100},
	{Grade: "A", MinRange: 85, MaxRange: 94},
	{Grade: "B", MinRange: 70, MaxRange: 84},
	{Grade: "C", MinRange: 50, MaxRange: 69},
	{Grade: "D", MinRange: 0, MaxRange: 49},
}

// NewHandler ranges из конфигурации, при пустых или некорректных используются встроенные
func NewHandler(ranges dbmodels.GradeRanges) {
	Instance = New(ranges)
}

func New(ranges dbmodels.GradeRanges) Provider {
	s := &impl{initial: BuiltinGradeRanges}
	if len(ranges) != 0 {
		if err := ranges.Validate(); err != nil {
			log.WithError(err).Warn("некорректные диапазоны оценок в конфигурации, используются встроенные")
		} else {
			s.initial = copyRanges(ranges)
		}
	}
	s.Reset()
	return s
}

type impl struct {
	mu      sync.RWMutex
	initial dbmodels.GradeRanges
	current dbmodels.GradeRanges
}

func (i *impl) DefaultGradeRanges() dbmodels.GradeRanges {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return copyRanges(i.current)
}

func (i *impl) SetDefaultGradeRanges(ranges dbmodels.GradeRanges) error {
	if err := ranges.Validate(); err != nil {
		return errors.Wrap(err, "некорректные диапазоны оценок")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.current = copyRanges(ranges)
	return nil
}

// Reset возврат к значениям, заданным при инициализации
func (i *impl) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.current = copyRanges(i.initial)
}

func copyRanges(ranges dbmodels.GradeRanges) dbmodels.GradeRanges {
	result := make(dbmodels.GradeRanges, len(ranges))
	copy(result, ranges)
	return result
}
