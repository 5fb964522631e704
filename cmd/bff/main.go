package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/saphereye/bff/bffvm"
	"github.com/saphereye/bff/cmds"
	"github.com/saphereye/bff/configs"
	"github.com/saphereye/bff/debugs"
	"github.com/saphereye/bff/logs"
	"github.com/saphereye/bff/modes"
	"github.com/saphereye/bff/sources"
)

var (
	programFile  = cmds.Var[string]("-file")
	evalSource   = cmds.Var[string]("-eval")
	tapeSize     = cmds.Var[int]("-tape-size")
	origin       = cmds.Var[int]("-origin")
	maxSteps     = cmds.Var[int64]("-max-steps")
	strict       = cmds.Switch("-strict")
	trace        = cmds.Switch("-trace")
	tapState     = cmds.Switch("-tap")
	snapshotFile = cmds.Var[string]("-snapshot")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *programFile == "" && *evalSource == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.bff> or -eval <source> is required")
		cmds.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(bffvm.Module),
		new(sources.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newRun logs.NewRun,
		load sources.Load,
		newMachine bffvm.NewMachine,
		machineConfig configs.Machine,
		tap debugs.Tap,
	) {
		ctx, _ := newRun(context.Background())

		strictMode := *strict || machineConfig.Strict

		var program *bffvm.Program
		var err error
		if *evalSource != "" {
			program, err = bffvm.Compile([]byte(*evalSource), strictMode)
		} else {
			program, err = load(*programFile, strictMode)
		}
		if err != nil {
			logger.ErrorContext(ctx, "load failed",
				"error", logs.WrapRun(ctx, err),
			)
			os.Exit(1)
		}

		vm := newMachine(program)
		if *tapeSize > 0 {
			vm.Tape = bffvm.NewTape(*tapeSize, *origin)
		} else if *origin > 0 {
			vm.Tape.Origin = *origin
		}
		if *maxSteps > 0 {
			vm.MaxSteps = *maxSteps
		}
		vm.Trace = *trace

		for step, err := range vm.Run {
			if err != nil {
				logger.ErrorContext(ctx, "execution halted",
					"error", logs.WrapRun(ctx, err),
				)
				os.Exit(1)
			}
			logger.InfoContext(ctx, "step",
				"pc", step.PC,
				"op", step.Op.String(),
				"head0", step.Head0,
				"head1", step.Head1,
				"cell", step.Cell,
			)
		}

		if *tapState {
			tap(ctx, "final machine state", map[string]any{
				"pc":    vm.PC,
				"head0": vm.Head0,
				"head1": vm.Head1,
				"steps": vm.Steps,
				"tape":  vm.Tape.Cells,
				"at": func(i int) int {
					v, _ := vm.Tape.At(i)
					return int(v)
				},
			})
		}

		if *snapshotFile != "" {
			f, err := os.Create(*snapshotFile)
			if err != nil {
				logger.ErrorContext(ctx, "create snapshot file",
					"error", logs.WrapRun(ctx, err),
				)
				os.Exit(1)
			}
			if err := vm.Snapshot(f); err != nil {
				logger.ErrorContext(ctx, "write snapshot",
					"error", logs.WrapRun(ctx, err),
				)
				os.Exit(1)
			}
			f.Close()
		}

		fmt.Println(vm.Tape.Dump())
	})
}
