package entities

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minColumnWidth = 3

// ReportHeader is the first row of every update report.
func ReportHeader() []string {
	return []string{"Name", "Old Version", "New Version"}
}

// Report is the tabular rendering of one run's dependency updates.
type Report struct {
	updates []DependencyUpdate
}

// NewReport builds a report for the given updates. An empty list renders a
// header-only table.
func NewReport(updates []DependencyUpdate) *Report {
	owned := make([]DependencyUpdate, len(updates))
	copy(owned, updates)
	return &Report{updates: owned}
}

// Updates returns the updates carried by the report.
func (r *Report) Updates() []DependencyUpdate {
	result := make([]DependencyUpdate, len(r.updates))
	copy(result, r.updates)
	return result
}

// Rows returns the header row followed by one row per update.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.updates)+1)
	rows = append(rows, ReportHeader())
	for _, update := range r.updates {
		rows = append(rows, update.TableRow())
	}
	return rows
}

// Markdown renders the report as a GitHub-flavoured markdown table with
// every column padded to its widest cell.
func (r *Report) Markdown() string {
	rows := r.Rows()
	widths := columnWidths(rows)

	var sb strings.Builder
	writeMarkdownRow(&sb, rows[0], widths)

	delimiter := make([]string, len(widths))
	for i, width := range widths {
		delimiter[i] = strings.Repeat("-", width)
	}
	writeMarkdownRow(&sb, delimiter, widths)

	for _, row := range rows[1:] {
		writeMarkdownRow(&sb, row, widths)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(escapeCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")
	for i, cell := range cells {
		escaped := escapeCell(cell)
		sb.WriteString(" ")
		sb.WriteString(escaped)
		sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(escaped)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// escapeCell keeps pipes inside a cell from splitting the column.
func escapeCell(cell string) string {
	return strings.ReplaceAll(cell, "|", `\|`)
}
