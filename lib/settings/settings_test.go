package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "hr-evaluation-backend/models/db"
)

func TestSettings(t *testing.T) {
	t.Run(`builtin defaults check`, func(t *testing.T) {
		s := New(nil)
		require.Equal(t, BuiltinGradeRanges, s.DefaultGradeRanges())
	})

	t.Run(`config ranges check`, func(t *testing.T) {
		ranges := dbmodels.GradeRanges{{Grade: "PASS", MinRange: 50, MaxRange: 100}, {Grade: "FAIL", MinRange: 0, MaxRange: 49}}
		s := New(ranges)
		require.Equal(t, ranges, s.DefaultGradeRanges())
	})

	t.Run(`invalid config ranges fallback check`, func(t *testing.T) {
		s := New(dbmodels.GradeRanges{{Grade: "A", MinRange: 10, MaxRange: 5}})
		require.Equal(t, BuiltinGradeRanges, s.DefaultGradeRanges())
	})

	t.Run(`set and reset check`, func(t *testing.T) {
		s := New(nil)
		custom := dbmodels.GradeRanges{{Grade: "X", MinRange: 0, MaxRange: 100}}
		require.NoError(t, s.SetDefaultGradeRanges(custom))
		require.Equal(t, custom, s.DefaultGradeRanges())

		s.Reset()
		require.Equal(t, BuiltinGradeRanges, s.DefaultGradeRanges())
	})

	t.Run(`overlapping ranges rejected check`, func(t *testing.T) {
		s := New(nil)
		err := s.SetDefaultGradeRanges(dbmodels.GradeRanges{
			{Grade: "A", MinRange: 50, MaxRange: 100},
			{Grade: "B", MinRange: 0, MaxRange: 50},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "пересекаются")
		require.Equal(t, BuiltinGradeRanges, s.DefaultGradeRanges())
	})

	t.Run(`returned copy is isolated check`, func(t *testing.T) {
		s := New(nil)
		got := s.DefaultGradeRanges()
		got[0].Grade = "mutated"
		require.Equal(t, "S", s.DefaultGradeRanges()[0].Grade)
	})
}
