package ports

import "crate-resolver/internal/types"

// ManifestPort locates and reads the manifest file. Locate and Read are
// split so failures keep their own error kinds: a missing manifest is a
// manifest-dir problem, a failed read is an I/O problem.
type ManifestPort interface {
	// Locate joins dir with the fixed manifest filename and verifies the
	// file exists. Absence is a hard failure, never retried.
	Locate(dir string) (path string, err error)

	// Read returns the manifest bytes. The file handle is scoped to the
	// call and released on every exit path.
	Read(path string) ([]byte, error)
}

// DecoderPort parses manifest bytes into the generic nested key/value
// tree. The concrete document syntax lives entirely behind this port.
type DecoderPort interface {
	Decode(data []byte) (types.Table, error)
}
