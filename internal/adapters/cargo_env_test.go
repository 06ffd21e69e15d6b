package adapters

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crate-resolver/internal/types"
)

func TestManifestDirFromEnv(t *testing.T) {
	t.Setenv(manifestDirVar, "/some/project")

	adapter := NewCargoEnvAdapter()
	dir, ok := adapter.ManifestDir()
	require.True(t, ok)
	assert.Equal(t, "/some/project", dir)
}

func TestManifestDirUnset(t *testing.T) {
	t.Setenv(manifestDirVar, "placeholder")
	require.NoError(t, os.Unsetenv(manifestDirVar))

	adapter := NewCargoEnvAdapter()
	_, ok := adapter.ManifestDir()
	assert.False(t, ok)
}

func TestBuildContextSecondaryWhenMarkerSet(t *testing.T) {
	t.Setenv(DefaultSecondaryMarker, "/tmp/target/tmp")

	adapter := NewCargoEnvAdapter()
	assert.Equal(t, types.BuildContextSecondary, adapter.BuildContext())
}

func TestBuildContextWithCustomMarker(t *testing.T) {
	t.Setenv("MY_MARKER", "1")

	adapter := NewCargoEnvAdapterWithMarker("MY_MARKER")
	assert.Equal(t, types.BuildContextSecondary, adapter.BuildContext())

	disabled := NewCargoEnvAdapterWithMarker("")
	assert.Equal(t, types.BuildContextPrimary, disabled.BuildContext())
}

func TestStaticEnvAdapter(t *testing.T) {
	adapter := NewStaticEnvAdapter("/work/project", types.BuildContextSecondary)
	dir, ok := adapter.ManifestDir()
	require.True(t, ok)
	assert.Equal(t, "/work/project", dir)
	assert.Equal(t, types.BuildContextSecondary, adapter.BuildContext())

	empty := NewStaticEnvAdapter("", "")
	_, ok = empty.ManifestDir()
	assert.False(t, ok)
	assert.Equal(t, types.BuildContextPrimary, empty.BuildContext())
}
