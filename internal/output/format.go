// Package output renders records for the CLI.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/budget"
	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/todo"
)

// EmptyList is printed when there is nothing to show.
const EmptyList = "(none)"

// FormatAmount renders money with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatTransaction formats a transaction line.
// Format: "{N:>4}  {Type} - {category}: {amount}"
func FormatTransaction(w io.Writer, index int, txn model.Transaction) {
	fmt.Fprintf(w, "%4s  %s - %s: %s\n", id.FormatRef(index), typeLabel(txn.Type), normalize(txn.Category), FormatAmount(txn.Amount))
}

// FormatTransactions formats every transaction, or EmptyList.
func FormatTransactions(w io.Writer, txns []model.Transaction) {
	if len(txns) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for i, txn := range txns {
		FormatTransaction(w, i, txn)
	}
}

// FormatBreakdown formats expense totals, one "category: amount" per line.
func FormatBreakdown(w io.Writer, rows []budget.CategoryAmount) {
	if len(rows) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s: %s\n", normalize(row.Category), FormatAmount(row.Amount))
	}
}

// FormatTask formats a task line using its position in the full list.
// Format: "{N:>4}  [Done|Not Done] {description} (Priority: p, Due: d)"
func FormatTask(w io.Writer, entry todo.Entry) {
	task := entry.Task
	task.Description = normalize(task.Description)
	fmt.Fprintf(w, "%4s  %s\n", id.FormatRef(entry.Index), task)
}

// FormatTasks formats every entry, or EmptyList.
func FormatTasks(w io.Writer, entries []todo.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for _, e := range entries {
		FormatTask(w, e)
	}
}

func typeLabel(t model.TransactionType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// normalize keeps one record per line.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
