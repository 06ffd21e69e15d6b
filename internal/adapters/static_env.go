package adapters

import "crate-resolver/internal/types"

// StaticEnvAdapter supplies a fixed manifest directory and build context,
// used when the directory comes from a flag instead of the process
// environment, and by tests.
type StaticEnvAdapter struct {
	Dir     string
	Context types.BuildContext
}

func NewStaticEnvAdapter(dir string, buildCtx types.BuildContext) StaticEnvAdapter {
	return StaticEnvAdapter{Dir: dir, Context: buildCtx}
}

func (a StaticEnvAdapter) ManifestDir() (string, bool) {
	return a.Dir, a.Dir != ""
}

func (a StaticEnvAdapter) BuildContext() types.BuildContext {
	if a.Context == "" {
		return types.BuildContextPrimary
	}
	return a.Context
}
