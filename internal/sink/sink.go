package sink

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"

	"fplthreats/internal/report"
)

// Sink receives the formatted report table.
type Sink interface {
	Name() string
	Send(ctx context.Context, table report.Table) error
}

// Console prints the table aligned in columns.
type Console struct {
	out io.Writer
}

// NewConsole writes tables to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Name() string { return "console" }

// Send renders the table with a tabwriter.
func (c *Console) Send(_ context.Context, table report.Table) error {
	return RenderText(c.out, table)
}

// RenderText writes table as space-aligned columns.
func RenderText(out io.Writer, table report.Table) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(table.Header, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = sanitizeInline(cell)
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	return writer.Flush()
}

func sanitizeInline(v string) string {
	cleaned := strings.ReplaceAll(v, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\r", " ")
	return strings.ReplaceAll(cleaned, "\t", " ")
}

// Clipboard copies the table tab-separated so it pastes into a spreadsheet.
type Clipboard struct {
	write func(string) error
}

// NewClipboard uses the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

func (c *Clipboard) Name() string { return "clipboard" }

// Send replaces the clipboard contents with the table.
func (c *Clipboard) Send(_ context.Context, table report.Table) error {
	if err := c.write(table.TSV()); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

var (
	_ Sink = (*Console)(nil)
	_ Sink = (*Clipboard)(nil)
)
