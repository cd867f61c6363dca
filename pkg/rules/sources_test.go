package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/plugins"
)

func TestRegisterAndLookupSource(t *testing.T) {
	src := plugins.NewSource("lookup-test",
		plugins.Descriptor[Factory]{ID: "SomeRule", Make: stubFactory},
	)
	require.NoError(t, RegisterSource(src))

	t.Run("registered source is found", func(t *testing.T) {
		got := LookupSource("lookup-test")
		require.NotNil(t, got)
		assert.Equal(t, "lookup-test", got.Name())
	})

	t.Run("unknown source is nil, not an error", func(t *testing.T) {
		assert.Nil(t, LookupSource("no-such-source"))
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		assert.Error(t, RegisterSource(src))
	})
}

func TestSearchPath(t *testing.T) {
	src := plugins.NewSource("searchpath-test",
		plugins.Descriptor[Factory]{ID: "SomeRule", Make: stubFactory},
	)
	require.NoError(t, RegisterSource(src))

	path := SearchPath("missing-dir", "searchpath-test")

	require.Len(t, path, 2)
	assert.Nil(t, path[0], "unknown names become nil placeholders")
	require.NotNil(t, path[1])
	assert.Equal(t, "searchpath-test", path[1].Name())

	// The sparse path still resolves through the surviving entry.
	_, ok := plugins.Resolve("some", RoleSuffix, path)
	assert.True(t, ok)
}

func TestLoadFromSources(t *testing.T) {
	src := plugins.NewSource("loadfrom-test",
		plugins.Descriptor[Factory]{ID: "SomeRule", Make: stubFactory},
	)
	require.NoError(t, RegisterSource(src))

	cfg := Config{{Name: "some", Value: true}}
	loaded, err := LoadFromSources(cfg, enablement.ToggleSet{}, "loadfrom-test")

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "some", loaded[0].Name())
}
