package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// maxCellWidth caps table cells when stdout is not a terminal.
const maxCellWidth = 60

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func validateOutputFormat(output string) error {
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// defaultOutputFormat picks table output for terminals and JSON for pipes.
func defaultOutputFormat() string {
	if term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // file descriptors fit in int
		return outputTable
	}
	return outputJSON
}

// cellWidth is the widest a table cell may be: a share of the terminal width,
// or maxCellWidth when stdout is not a terminal.
func cellWidth(columns int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int
	if err != nil || columns == 0 {
		return maxCellWidth
	}
	return max(12, min(maxCellWidth, width/columns))
}

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTable writes an aligned, borderless table with a bold header. Cells
// longer than the column budget are cut with an ellipsis.
func PrintTable(w io.Writer, columns []string, rows [][]string) {
	limit := cellWidth(len(columns))
	body := make([][]string, len(rows))
	for i, row := range rows {
		body[i] = truncateAll(row, limit)
	}

	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().PaddingRight(2)
	header := cell.Bold(true)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(truncateAll(columns, limit)...).
		Rows(body...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	_, _ = fmt.Fprintln(w, t.String())
}

func truncateAll(cells []string, limit int) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = truncate(c, limit)
	}
	return out
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
