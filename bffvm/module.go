package bffvm

import (
	"github.com/reusee/dscope"
	"github.com/saphereye/bff/configs"
	"github.com/saphereye/bff/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// NewMachine builds a VM for a compiled program, applying the configured
// tape shape and step budget.
type NewMachine func(program *Program) *VM

func (Module) NewMachine(
	logger logs.Logger,
	config configs.Machine,
) NewMachine {
	return func(program *Program) *VM {
		vm := NewVM(program)
		vm.SetLogger(logger)
		vm.MaxSteps = config.MaxSteps
		if config.TapeSize > 0 {
			vm.Tape = NewTape(config.TapeSize, config.Origin)
		} else if config.Origin > 0 {
			vm.Tape.Origin = config.Origin
		}
		return vm
	}
}
