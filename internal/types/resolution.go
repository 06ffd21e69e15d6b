package types

type ResolutionKind string

const (
	// ResolutionItself marks the canonical name as the current crate itself.
	ResolutionItself ResolutionKind = "itself"
	// ResolutionNamed carries the sanitized local identifier for the crate.
	ResolutionNamed ResolutionKind = "named"
)

type BuildContext string

const (
	// BuildContextPrimary is a regular library/binary build of the crate.
	BuildContextPrimary BuildContext = "primary"
	// BuildContextSecondary is an integration-test or example artifact,
	// which cannot refer to the primary artifact as itself.
	BuildContextSecondary BuildContext = "secondary"
)

// Resolution is the answer for one canonical crate name: either the crate
// is the current build unit, or it is known locally under Name.
type Resolution struct {
	Kind ResolutionKind
	Name string
}

// ResolutionTable maps canonical (published) crate names to resolutions.
type ResolutionTable map[string]Resolution

func Itself() Resolution {
	return Resolution{Kind: ResolutionItself}
}

func Named(name string) Resolution {
	return Resolution{Kind: ResolutionNamed, Name: name}
}
