package ports

import "crate-resolver/internal/types"

// EnvironmentPort exposes the build-process environment contract. The
// hosting build tool supplies the manifest directory and, optionally, a
// marker that distinguishes secondary (integration-test style) artifacts
// from the primary build.
type EnvironmentPort interface {
	// ManifestDir returns the directory that holds the manifest.
	// ok is false when the hosting process did not supply it.
	ManifestDir() (dir string, ok bool)

	// BuildContext reports whether the current invocation builds the
	// primary artifact or a secondary test/example artifact.
	BuildContext() types.BuildContext
}
