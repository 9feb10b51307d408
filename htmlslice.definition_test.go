package htmlslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry tests definition registration and lookup
func TestRegistry(t *testing.T) {
	factory := func() Renderer { return new(fakeSlice) }

	t.Run("register and lookup", func(t *testing.T) {
		reg := NewRegistry(nil)
		require.NoError(t, reg.Register(SliceDefinition{
			Identifier: "pages/home",
			Factory:    factory,
		}))

		def, ok := reg.Lookup("pages/home")
		require.True(t, ok)
		assert.Equal(t, "pages/home", def.Identifier)
		assert.False(t, def.RequiresInjection)

		_, ok = reg.Lookup("pages/missing")
		assert.False(t, ok)
	})

	t.Run("duplicate identifier rejected", func(t *testing.T) {
		reg := NewRegistry(nil)
		require.NoError(t, reg.Register(SliceDefinition{Identifier: "dup", Factory: factory}))
		err := reg.Register(SliceDefinition{Identifier: "dup", Factory: factory})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDuplicateDefinition)
	})

	t.Run("empty identifier rejected", func(t *testing.T) {
		err := NewRegistry(nil).Register(SliceDefinition{Factory: factory})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyIdentifier)
	})

	t.Run("nil factory rejected", func(t *testing.T) {
		err := NewRegistry(nil).Register(SliceDefinition{Identifier: "broken"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilFactory)
	})

	t.Run("injected definition needs injected factory", func(t *testing.T) {
		err := NewRegistry(nil).Register(SliceDefinition{
			Identifier:        "di",
			Factory:           factory,
			RequiresInjection: true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilFactory)
	})

	t.Run("identifiers sorted", func(t *testing.T) {
		reg := NewRegistry(nil)
		for _, id := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, reg.Register(SliceDefinition{Identifier: id, Factory: factory}))
		}
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Identifiers())
	})

	t.Run("must register panics on error", func(t *testing.T) {
		reg := NewRegistry(nil)
		assert.Panics(t, func() {
			reg.MustRegister(SliceDefinition{Identifier: ""})
		})
	})
}
