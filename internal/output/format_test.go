package output

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tally-dev/tally/internal/budget"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/todo"
)

func TestFormatTransactions(t *testing.T) {
	var buf bytes.Buffer
	FormatTransactions(&buf, []model.Transaction{
		model.NewTransaction(model.TransactionIncome, "pay", decimal.NewFromInt(1000)),
		model.NewTransaction(model.TransactionExpense, "rent\nhouse", decimal.RequireFromString("400.5")),
	})
	assert.Equal(t, "   1  Income - pay: 1000.00\n   2  Expense - rent house: 400.50\n", buf.String())
}

func TestFormatTransactions_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTransactions(&buf, nil)
	assert.Equal(t, "(none)\n", buf.String())
}

func TestFormatBreakdown(t *testing.T) {
	var buf bytes.Buffer
	FormatBreakdown(&buf, []budget.CategoryAmount{
		{Category: "rent", Amount: decimal.NewFromInt(400)},
		{Category: "food", Amount: decimal.NewFromInt(100)},
	})
	assert.Equal(t, "rent: 400.00\nfood: 100.00\n", buf.String())
}

func TestFormatTasks(t *testing.T) {
	done := model.NewTask("pay bills", model.PriorityHigh, "2025-01-31")
	done.Completed = true

	var buf bytes.Buffer
	FormatTasks(&buf, []todo.Entry{
		{Index: 2, Task: done},
		{Index: 0, Task: model.NewTask("water plants", "", "")},
	})
	assert.Equal(t,
		"   3  [Done] pay bills (Priority: high, Due: 2025-01-31)\n"+
			"   1  [Not Done] water plants (Priority: low, Due: No due date)\n",
		buf.String())
}

func TestFormatTasks_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTasks(&buf, nil)
	assert.Equal(t, EmptyList+"\n", buf.String())
}
