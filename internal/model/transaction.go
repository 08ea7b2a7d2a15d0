package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a budget transaction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is one entry in transactions.json.
type Transaction struct {
	Type     TransactionType
	Category string
	Amount   decimal.Decimal // sign-agnostic, not checked against Type
}

// NewTransaction builds a Transaction from explicit field values.
func NewTransaction(typ TransactionType, category string, amount decimal.Decimal) Transaction {
	return Transaction{Type: typ, Category: category, Amount: amount}
}

// transactionJSON is the on-disk shape. Pointers let decoding tell a missing
// key apart from a zero value.
type transactionJSON struct {
	Type     *TransactionType `json:"type"`
	Category *string          `json:"category"`
	Amount   *json.Number     `json:"amount"`
}

// MarshalJSON writes the transaction with amount as a JSON number.
func (t Transaction) MarshalJSON() ([]byte, error) {
	amount := json.Number(t.Amount.String())
	return json.Marshal(transactionJSON{
		Type:     &t.Type,
		Category: &t.Category,
		Amount:   &amount,
	})
}

// UnmarshalJSON reads a transaction object. All three keys are required.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []error
	if raw.Type == nil {
		missing = append(missing, errors.New("missing key \"type\""))
	}
	if raw.Category == nil {
		missing = append(missing, errors.New("missing key \"category\""))
	}
	if raw.Amount == nil {
		missing = append(missing, errors.New("missing key \"amount\""))
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	amount, err := decimal.NewFromString(raw.Amount.String())
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", raw.Amount.String(), err)
	}

	*t = Transaction{
		Type:     *raw.Type,
		Category: *raw.Category,
		Amount:   amount,
	}
	return nil
}
