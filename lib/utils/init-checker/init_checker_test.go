package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Do() }

type providerImpl struct{}

func (p *providerImpl) Do() {}

func TestCheckInit(t *testing.T) {
	t.Run(`initialized dependencies check`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("store", &providerImpl{}, "name", "value")
		})
	})

	t.Run(`nil dependency check`, func(t *testing.T) {
		var p provider
		require.PanicsWithValue(t, "зависимость registry не инициализирована", func() {
			CheckInit("registry", p)
		})
	})

	t.Run(`typed nil dependency check`, func(t *testing.T) {
		var impl *providerImpl
		var p provider = impl
		require.Panics(t, func() {
			CheckInit("gateway", p)
		})
	})

	t.Run(`odd arguments check`, func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("store")
		})
	})
}
