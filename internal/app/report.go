package app

import (
	"context"
	"fmt"
	"slices"
)

// Report runs the pipeline once, prints the table and copies it to the
// configured sinks.
func (a *App) Report(ctx context.Context) error {
	svc, closeLists, err := a.newService(ctx, sinkSet{console: true, clipboard: true, telegram: true})
	if err != nil {
		return err
	}
	defer closeLists()

	res, err := svc.Build(ctx)
	if err != nil {
		return err
	}

	delivered, err := svc.Publish(ctx, res.Table)
	if err != nil {
		return err
	}

	if len(res.HistoryFailures) > 0 {
		fmt.Fprintf(a.Out, "%d players had no history and were scored as dead\n", len(res.HistoryFailures))
	}
	if slices.Contains(delivered, "clipboard") {
		fmt.Fprintln(a.Out, "✅ Threat & MadLads ready for clipboard.")
	}
	return nil
}
