// Package budget keeps an ordered list of income and expense transactions
// mirrored to a JSON file.
package budget

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/store"
)

// DefaultFile is the backing file name used when none is configured.
const DefaultFile = "transactions.json"

var (
	// ErrMissingInput means a category or amount was not supplied.
	ErrMissingInput = errors.New("category and amount are required")
	// ErrInvalidType means the transaction type is neither income nor expense.
	ErrInvalidType = errors.New("invalid transaction type")
)

// Manager owns the in-memory transactions and their backing file.
// It is not safe for concurrent use.
type Manager struct {
	path         string
	transactions []model.Transaction
}

// Open creates a Manager backed by path, loading existing transactions if the
// file is present.
func Open(path string) (*Manager, error) {
	txns, err := store.Load[model.Transaction](path)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	log.Debug().Str("path", path).Int("count", len(txns)).Msg("loaded transactions")
	return &Manager{path: path, transactions: txns}, nil
}

// Path returns the backing file path.
func (m *Manager) Path() string {
	return m.path
}

// AddIncome appends an income transaction.
func (m *Manager) AddIncome(category string, amount decimal.Decimal) error {
	return m.Add(model.TransactionIncome, category, amount)
}

// AddExpense appends an expense transaction.
func (m *Manager) AddExpense(category string, amount decimal.Decimal) error {
	return m.Add(model.TransactionExpense, category, amount)
}

// Add validates and appends a transaction, then persists the full list.
// Nothing is appended when validation fails.
func (m *Manager) Add(typ model.TransactionType, category string, amount decimal.Decimal) error {
	txn := model.NewTransaction(typ, category, amount)
	if err := validate(txn); err != nil {
		return err
	}
	m.transactions = append(m.transactions, txn)
	return m.persist()
}

// Import appends every transaction in txns with a single persist. Either all
// of them are appended or, on a validation error, none are.
func (m *Manager) Import(txns []model.Transaction) error {
	for i, txn := range txns {
		if err := validate(txn); err != nil {
			return fmt.Errorf("transaction %d: %w", i+1, err)
		}
	}
	m.transactions = append(m.transactions, txns...)
	return m.persist()
}

// All returns a copy of the transactions in insertion order.
func (m *Manager) All() []model.Transaction {
	return slices.Clone(m.transactions)
}

// Len returns the number of transactions.
func (m *Manager) Len() int {
	return len(m.transactions)
}

func validate(txn model.Transaction) error {
	if strings.TrimSpace(txn.Category) == "" || txn.Amount.IsZero() {
		return ErrMissingInput
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, txn.Type)
	}
	return nil
}

// persist writes the whole list. On failure the in-memory list is kept and
// the next successful persist writes it.
func (m *Manager) persist() error {
	if err := store.Save(m.path, m.transactions); err != nil {
		log.Warn().Err(err).Str("path", m.path).Msg("persisting transactions failed")
		return fmt.Errorf("saving transactions: %w", err)
	}
	log.Debug().Str("path", m.path).Int("count", len(m.transactions)).Msg("persisted transactions")
	return nil
}
