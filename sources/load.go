package sources

import (
	"fmt"
	"os"

	"github.com/saphereye/bff/bffvm"
	"github.com/saphereye/bff/logs"
)

// Load reads a program file and compiles it. The strict flag rejects
// non-instruction characters instead of skipping them.
type Load func(path string, strict bool) (*bffvm.Program, error)

func (Module) Load(
	logger logs.Logger,
) Load {
	return func(path string, strict bool) (*bffvm.Program, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load program %s: %w", path, err)
		}

		program, err := bffvm.Compile(content, strict)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}

		logger.Debug("program loaded",
			"path", path,
			"bytes", len(content),
			"instructions", len(program.Ops),
		)
		return program, nil
	}
}
