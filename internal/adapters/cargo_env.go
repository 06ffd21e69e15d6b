package adapters

import (
	"os"

	"crate-resolver/internal/types"
)

// DefaultSecondaryMarker is the environment variable whose presence marks
// a secondary (integration-test) build artifact. Cargo sets it only while
// compiling integration tests, benches, and examples.
const DefaultSecondaryMarker = "CARGO_TARGET_TMPDIR"

const manifestDirVar = "CARGO_MANIFEST_DIR"

// CargoEnvAdapter reads the Cargo build contract from the process
// environment. The secondary-artifact marker is configurable because the
// exact signal is build-tool policy, not a property of the manifest.
type CargoEnvAdapter struct {
	secondaryMarker string
}

func NewCargoEnvAdapter() CargoEnvAdapter {
	return CargoEnvAdapter{secondaryMarker: DefaultSecondaryMarker}
}

// NewCargoEnvAdapterWithMarker overrides the secondary-artifact marker
// variable name. An empty marker disables secondary detection entirely.
func NewCargoEnvAdapterWithMarker(marker string) CargoEnvAdapter {
	return CargoEnvAdapter{secondaryMarker: marker}
}

func (a CargoEnvAdapter) ManifestDir() (string, bool) {
	return os.LookupEnv(manifestDirVar)
}

func (a CargoEnvAdapter) BuildContext() types.BuildContext {
	if a.secondaryMarker == "" {
		return types.BuildContextPrimary
	}
	if _, ok := os.LookupEnv(a.secondaryMarker); ok {
		return types.BuildContextSecondary
	}
	return types.BuildContextPrimary
}
