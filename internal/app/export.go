package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"fplthreats/internal/player"
	"fplthreats/internal/report"
)

const defaultMaxBars = 25

// Export renders the report as CSV and/or a PNG bar chart.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}
	if opts.MaxBars <= 0 {
		opts.MaxBars = defaultMaxBars
	}

	svc, closeLists, err := a.newService(ctx, sinkSet{})
	if err != nil {
		return err
	}
	defer closeLists()

	res, err := svc.Build(ctx)
	if err != nil {
		return err
	}

	rows := res.Presented
	if opts.All {
		rows = res.Combined
	}
	if len(rows) == 0 {
		a.Logger.Info().Msg("no players to export")
		return nil
	}
	a.Logger.Info().Int("rows", len(rows)).Bool("all", opts.All).Msg("exporting report")

	if opts.CSVPath != "" {
		if err := writeReportCSV(opts.CSVPath, report.Format(rows)); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := writeFormPNG(opts.PNGPath, topRows(rows, opts.MaxBars)); err != nil {
			return err
		}
	}

	return nil
}

func topRows(rows []player.Classified, max int) []player.Classified {
	if max <= 0 || len(rows) <= max {
		return rows
	}
	return rows[:max]
}

func writeReportCSV(path string, table report.Table) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	return writer.Error()
}

var (
	seasonStyle = chart.Style{FillColor: chart.ColorBlue, StrokeColor: chart.ColorBlue, StrokeWidth: 1}
	recentStyle = chart.Style{FillColor: chart.ColorOrange, StrokeColor: chart.ColorOrange, StrokeWidth: 1}
)

// writeFormPNG draws season PPG next to recent form for every player.
func writeFormPNG(path string, rows []player.Classified) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	const barWidth, barSpacing = 28, 6
	bars := make([]chart.Value, 0, 2*len(rows))
	top := 0.0
	for _, r := range rows {
		top = max(top, r.Player.PointsPerGame.InexactFloat64(), r.Form.Average.InexactFloat64())
		bars = append(bars,
			chart.Value{
				Label: r.Player.WebName + " PxG",
				Value: r.Player.PointsPerGame.InexactFloat64(),
				Style: seasonStyle,
			},
			chart.Value{
				Label: "L5",
				Value: r.Form.Average.InexactFloat64(),
				Style: recentStyle,
			},
		)
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Season PxG vs recent form (%d players)", len(rows)),
		Width:      max(1024, len(bars)*(barWidth+barSpacing)+160),
		Height:     640,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Bottom: 96}},
		YAxis: chart.YAxis{
			Name:  "Points per game",
			Range: &chart.ContinuousRange{Min: 0, Max: math.Ceil(top) + 1},
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.1f")
			},
		},
		Bars: bars,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
