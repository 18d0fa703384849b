package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// ActivityMetadata произвольные данные записи журнала действий
type ActivityMetadata map[string]any

func (j ActivityMetadata) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ActivityMetadata) Scan(value any) error {
	return scanJSON(value, j)
}

type GradeRange struct {
	Grade    string `json:"grade" yaml:"grade"`
	MinRange int    `json:"min_range" yaml:"min_range"`
	MaxRange int    `json:"max_range" yaml:"max_range"`
}

type GradeRanges []GradeRange

func (j GradeRanges) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *GradeRanges) Scan(value any) error {
	return scanJSON(value, j)
}

func scanJSON(value any, out any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, out)
	case string:
		return json.Unmarshal([]byte(v), out)
	default:
		return errors.Errorf("неподдерживаемый тип значения jsonb: %T", value)
	}
}

// Validate диапазоны не пересекаются, min <= max, названия уникальны
func (j GradeRanges) Validate() error {
	if len(j) == 0 {
		return errors.New("не указаны диапазоны оценок")
	}
	grades := map[string]struct{}{}
	for idx, item := range j {
		if item.Grade == "" {
			return errors.New("не указано название оценки")
		}
		if _, exist := grades[item.Grade]; exist {
			return errors.Errorf("оценка %v указана повторно", item.Grade)
		}
		grades[item.Grade] = struct{}{}
		if item.MinRange < 0 || item.MinRange > item.MaxRange {
			return errors.Errorf("некорректный диапазон оценки %v: %v-%v", item.Grade, item.MinRange, item.MaxRange)
		}
		for _, other := range j[idx+1:] {
			if item.MinRange <= other.MaxRange && other.MinRange <= item.MaxRange {
				return errors.Errorf("диапазоны оценок %v и %v пересекаются", item.Grade, other.Grade)
			}
		}
	}
	return nil
}
