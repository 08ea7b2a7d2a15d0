package budget

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// CategoryAmount is an expense total for one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Income returns the sum of all income amounts.
func (m *Manager) Income() decimal.Decimal {
	return m.sum(model.TransactionIncome)
}

// Expenses returns the sum of all expense amounts.
func (m *Manager) Expenses() decimal.Decimal {
	return m.sum(model.TransactionExpense)
}

// Total returns income minus expenses over every transaction.
func (m *Manager) Total() decimal.Decimal {
	return m.Income().Sub(m.Expenses())
}

// ByCategory sums expense amounts per category. Income is ignored.
func (m *Manager) ByCategory() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range m.transactions {
		if txn.Type != model.TransactionExpense {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// Breakdown returns ByCategory as a slice, largest amount first and then by
// category name.
func (m *Manager) Breakdown() []CategoryAmount {
	totals := m.ByCategory()
	out := make([]CategoryAmount, 0, len(totals))
	for cat, amt := range totals {
		out = append(out, CategoryAmount{Category: cat, Amount: amt})
	}
	slices.SortFunc(out, func(a, b CategoryAmount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

func (m *Manager) sum(typ model.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range m.transactions {
		if txn.Type == typ {
			total = total.Add(txn.Amount)
		}
	}
	return total
}
