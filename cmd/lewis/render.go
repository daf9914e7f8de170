package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexshd/lewis"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var renderers = map[string]func(io.Writer, *lewis.Report) error{
	formatTable: renderTable,
	formatJSON:  renderJSON,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func renderTable(w io.Writer, report *lewis.Report) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Index", "Original Number", "Factors", "Reduced Number").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return cellStyle
			default:
				return numberStyle
			}
		})

	for _, rec := range report.Records {
		t.Row(
			strconv.Itoa(rec.Index),
			strconv.FormatInt(rec.Number, 10),
			rec.FactorList(),
			strconv.FormatInt(rec.Reduced, 10),
		)
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("Formatted Lewis Sieve Output:"))
	fmt.Fprintln(&b, t.Render())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, titleStyle.Render("Numbers Not in Derived List (Missing Numbers):"))
	fmt.Fprintln(&b, formatList(report.Missing))
	fmt.Fprintf(&b, "Missing Number that are not Prime: %d\n", report.MissingNonPrime)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderJSON(w io.Writer, report *lewis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func renderBench(w io.Writer, base int64, results []lewis.ScanResult) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Workers", "Mean", "Min", "Speedup").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return numberStyle
		})

	for _, r := range results {
		t.Row(
			strconv.Itoa(r.Workers),
			r.Mean.String(),
			r.Min.String(),
			strconv.FormatFloat(r.Speedup, 'f', 2, 64),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(fmt.Sprintf("Sieve scan, base %d:", base)), t.Render())
	return err
}

// formatList renders numbers as [a, b, c].
func formatList(nums []int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
