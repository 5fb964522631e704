package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

const schemaSrc = `
machine?: {
	tapeSize?: int & >=0
	origin?: int & >=0
	strict?: bool
	maxSteps?: int & >=0
}
`

// Loader provides the default loader: bff.cue in the working directory, then
// the user config directory. Missing files are simply not loaded.
func (Module) Loader() Loader {
	var paths []string
	paths = append(paths, "bff.cue")
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "bff", "bff.cue"))
	}

	var existing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}

	return NewLoader(existing, schemaSrc)
}
