package besteffort

import (
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	logger, hook := test.NewNullLogger()
	entry := log.NewEntry(logger)

	t.Run(`success check`, func(t *testing.T) {
		hook.Reset()
		called := false
		ok := Run(entry, "noop", func() error {
			called = true
			return nil
		})
		require.True(t, ok)
		require.True(t, called)
		require.Empty(t, hook.Entries)
	})

	t.Run(`error is swallowed and logged check`, func(t *testing.T) {
		hook.Reset()
		ok := Run(entry, "activity_log", func() error {
			return errors.New("db is down")
		})
		require.False(t, ok)
		require.Len(t, hook.Entries, 1)
		require.Equal(t, log.WarnLevel, hook.LastEntry().Level)
		require.Equal(t, "activity_log", hook.LastEntry().Data["action"])
	})

	t.Run(`panic is recovered check`, func(t *testing.T) {
		hook.Reset()
		ok := Run(entry, "notify", func() error {
			panic("nil map")
		})
		require.False(t, ok)
		require.Len(t, hook.Entries, 1)
		require.Equal(t, "nil map", hook.LastEntry().Data["panic"])
	})

	t.Run(`nil logger check`, func(t *testing.T) {
		require.NotPanics(t, func() {
			Run(nil, "nil_logger", func() error { return errors.New("fail") })
		})
	})
}
