package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ManifestFilename is the fixed name appended to the manifest directory.
const ManifestFilename = "Cargo.toml"

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Locate(dir string) (string, error) {
	path := filepath.Join(dir, ManifestFilename)
	if _, err := os.Stat(path); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("could not find " + ManifestFilename + " in manifest dir: " + dir).
			WithCause(err)
	}
	return path, nil
}

func (a ManifestFileAdapter) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("could not read " + path).
			WithCause(err)
	}
	return data, nil
}
