package report

import (
	"strconv"
	"strings"

	"fplthreats/internal/player"
)

// Columns is the fixed header of the formatted report.
var Columns = []string{
	"FPL ID",
	"Team",
	"Player Name",
	"Position",
	"PTS",
	"Ownership %",
	"£ Price",
	"PxG",
	"PxGLx",
	"L5GW",
	"Player Profile",
}

// Table is the rendered report: a header and string cells per row.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len is the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// TSV renders the table tab-separated with a trailing newline, suitable for
// pasting into a spreadsheet.
func (t Table) TSV() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Header, "\t"))
	b.WriteByte('\n')
	for _, r := range t.Rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// Format renders classified rows into display cells.
func Format(rows []player.Classified) Table {
	t := Table{Header: append([]string(nil), Columns...), Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, FormatRow(r))
	}
	return t
}

// FormatRow renders one row in column order.
func FormatRow(r player.Classified) []string {
	p := r.Player
	return []string{
		strconv.Itoa(p.ID),
		r.Cohort.Label(),
		p.WebName,
		p.Position.String(),
		strconv.Itoa(p.TotalPoints),
		p.Ownership.StringFixed(1) + "%",
		"£" + p.Price().StringFixed(1),
		p.PointsPerGame.StringFixed(2),
		r.Form.Average.StringFixed(1),
		r.Trend.Ratio.StringFixed(2) + " " + r.Trend.Tag.Symbol(),
		r.ProfileLabel(),
	}
}
