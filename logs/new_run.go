package logs

import (
	"context"
	"crypto/rand"
)

// Run identifies one interpreter execution in log output.
type Run string

type runKeyType struct{}

var RunKey runKeyType

type NewRun func(ctx context.Context) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context) (context.Context, Run) {
		var parent Run
		if v := ctx.Value(RunKey); v != nil {
			parent = v.(Run)
		}

		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new run", args...)

		return ctx, run
	}
}
