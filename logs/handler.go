package logs

import (
	"context"
	"log/slog"
)

// Handler stamps records with the run identifier carried by the context, so
// every log line of one interpreter run can be correlated.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(RunKey); v != nil {
		record.Add("logs.run", v.(Run))
	}
	return h.Handler.Handle(ctx, record)
}
