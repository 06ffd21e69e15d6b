package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"crate-resolver/internal/adapters"
	"crate-resolver/internal/types"
)

func decodeManifest(t *testing.T, manifest string) types.Table {
	t.Helper()
	doc, err := adapters.NewTOMLDecoderAdapter().Decode([]byte(manifest))
	require.NoError(t, err)
	return doc
}

func extract(t *testing.T, manifest string, buildCtx types.BuildContext) types.ResolutionTable {
	t.Helper()
	return NewExtractor().ExtractCrateNames(t.Context(), decodeManifest(t, manifest), buildCtx)
}

func TestExtractPlainDependency(t *testing.T) {
	table := extract(t, `
[dependencies]
my_crate = "0.1"
`, types.BuildContextPrimary)

	require.Equal(t, types.Named("my_crate"), table["my_crate"])
}

func TestExtractDevDependency(t *testing.T) {
	table := extract(t, `
[dev-dependencies]
my_crate = "0.1"
`, types.BuildContextPrimary)

	require.Equal(t, types.Named("my_crate"), table["my_crate"])
}

func TestExtractRenamedDependencyInline(t *testing.T) {
	table := extract(t, `
[dependencies]
cool = { package = "my_crate", version = "0.1" }
`, types.BuildContextPrimary)

	require.Equal(t, types.Named("cool"), table["my_crate"])

	// The declared key is not a canonical name once renamed.
	_, ok := table["cool"]
	require.False(t, ok)
}

func TestExtractRenamedDependencyExpandedTable(t *testing.T) {
	table := extract(t, `
[dependencies.cool]
package = "my_crate"
version = "0.1"
`, types.BuildContextPrimary)

	require.Equal(t, types.Named("cool"), table["my_crate"])
}

func TestExtractEmptyDependencyTable(t *testing.T) {
	table := extract(t, `
[dependencies]
`, types.BuildContextPrimary)

	require.Empty(t, table)
}

func TestExtractTargetCfgDependency(t *testing.T) {
	table := extract(t, `
[target.'cfg(target_os="android")'.dependencies]
my_crate = "0.1"
`, types.BuildContextPrimary)

	require.Equal(t, types.Named("my_crate"), table["my_crate"])
}

func TestExtractTargetTripleDependency(t *testing.T) {
	table := extract(t, `
[target.x86_64-pc-windows-gnu.dependencies]
my_crate = "0.1"
`, types.BuildContextPrimary)

	require.Equal(t, types.Named("my_crate"), table["my_crate"])
}

func TestExtractOwnCratePrimaryBuild(t *testing.T) {
	table := extract(t, `
[package]
name = "my_crate"
`, types.BuildContextPrimary)

	require.Equal(t, types.Itself(), table["my_crate"])
}

func TestExtractOwnCrateSecondaryBuild(t *testing.T) {
	table := extract(t, `
[package]
name = "my-crate"
`, types.BuildContextSecondary)

	require.Equal(t, types.Named("my_crate"), table["my-crate"])
}

func TestExtractSanitizesDeclaredKeysOnly(t *testing.T) {
	table := extract(t, `
[dependencies]
my-dep = "0.1"

[target.'cfg(unix)'.dev-dependencies]
other-dep = { package = "published-name" }
`, types.BuildContextPrimary)

	expected := types.ResolutionTable{
		"my-dep":         types.Named("my_dep"),
		"published-name": types.Named("other_dep"),
	}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Fatalf("unexpected resolution table (-want +got):\n%s", diff)
	}
}

func TestExtractSkipsScalarTargetEntries(t *testing.T) {
	table := extract(t, `
[target]
stray = "value"

[target.x86_64-unknown-linux-gnu.dependencies]
my_crate = "0.1"
`, types.BuildContextPrimary)

	expected := types.ResolutionTable{
		"my_crate": types.Named("my_crate"),
	}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Fatalf("unexpected resolution table (-want +got):\n%s", diff)
	}
}

func TestExtractFullManifest(t *testing.T) {
	table := extract(t, `
[package]
name = "sample-app"

[dependencies]
serde = "1.0"
cool = { package = "my-cool-dep-real-name", version = "0.1" }

[dev-dependencies]
rstest = "0.18"

[target.'cfg(target_os = "android")'.dependencies]
android-logger = "0.13"
`, types.BuildContextPrimary)

	expected := types.ResolutionTable{
		"sample-app":            types.Itself(),
		"serde":                 types.Named("serde"),
		"my-cool-dep-real-name": types.Named("cool"),
		"rstest":                types.Named("rstest"),
		"android-logger":        types.Named("android_logger"),
	}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Fatalf("unexpected resolution table (-want +got):\n%s", diff)
	}
}
