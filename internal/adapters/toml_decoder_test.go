package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNestedTables(t *testing.T) {
	adapter := NewTOMLDecoderAdapter()
	doc, err := adapter.Decode([]byte(`
[package]
name = "my-app"

[dependencies]
serde = "1.0"

[target.'cfg(unix)'.dependencies]
nix = "0.27"
`))
	require.NoError(t, err)

	pkg, ok := doc.Table("package")
	require.True(t, ok)
	name, ok := pkg.String("name")
	require.True(t, ok)
	assert.Equal(t, "my-app", name)

	deps, ok := doc.Table("dependencies")
	require.True(t, ok)
	version, ok := deps.String("serde")
	require.True(t, ok)
	assert.Equal(t, "1.0", version)

	target, ok := doc.Table("target")
	require.True(t, ok)
	condition, ok := target.Table(`cfg(unix)`)
	require.True(t, ok)
	_, ok = condition.Table("dependencies")
	assert.True(t, ok)
}

func TestDecodeInvalidDocument(t *testing.T) {
	adapter := NewTOMLDecoderAdapter()
	_, err := adapter.Decode([]byte("this is not toml ["))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestTableAccessorsAreTotal(t *testing.T) {
	adapter := NewTOMLDecoderAdapter()
	doc, err := adapter.Decode([]byte(`
[dependencies]
serde = "1.0"
`))
	require.NoError(t, err)

	// Missing sections read as absent, never as errors.
	_, ok := doc.Table("dev-dependencies")
	assert.False(t, ok)
	_, ok = doc.String("package")
	assert.False(t, ok)

	// A scalar is not a table and a table is not a scalar.
	deps, ok := doc.Table("dependencies")
	require.True(t, ok)
	_, ok = deps.Table("serde")
	assert.False(t, ok)
	_, ok = doc.String("dependencies")
	assert.False(t, ok)
}
