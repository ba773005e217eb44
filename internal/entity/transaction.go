package entity

import (
	"FinancialBack/internal/api/transaction"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type TransactionType int

const (
	TypeIncome TransactionType = iota
	TypeExpense
)

// ParseTransactionType maps the wire vocabulary to the stored code. Input is
// case-insensitive; anything outside the vocabulary is a malformed-input error.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(s) {
	case "income":
		return TypeIncome, nil
	case "expense":
		return TypeExpense, nil
	default:
		return 0, transaction.ErrInvalidTransactionType
	}
}

func (t TransactionType) String() string {
	switch t {
	case TypeIncome:
		return "income"
	case TypeExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// Transaction must carry its resolved Category and User before validation:
// the cross-entity rules read their field values, not just the foreign keys.
type Transaction struct {
	ID          int64
	Description string
	Value       decimal.Decimal
	Type        TransactionType
	CategoryID  int64
	UserID      int64
	CreatedAt   time.Time
	Category    *Category
	User        *User
}

// Violations runs every transaction rule and collects the failures in
// declaration order. Nothing short-circuits and the receiver is not mutated.
func (t *Transaction) Violations() []string {
	var violations []string

	if strings.TrimSpace(t.Description) == "" {
		violations = append(violations, "description is required")
	}
	if utf8.RuneCountInString(t.Description) < 2 {
		violations = append(violations, "description must be at least 2 characters")
	}
	if utf8.RuneCountInString(t.Description) > 300 {
		violations = append(violations, "description must be at most 300 characters")
	}
	if !t.Value.IsPositive() {
		violations = append(violations, "value must be greater than zero")
	}
	if !t.typeCompatibleWithFinality() {
		violations = append(violations, "transaction type is not compatible with the selected category finality")
	}
	if t.CategoryID <= 0 {
		violations = append(violations, "invalid category")
	}
	if t.UserID <= 0 {
		violations = append(violations, "invalid user")
	}
	if !t.ageCompatibleWithType() {
		violations = append(violations, "a minor cannot own income transactions")
	}

	return violations
}

// An unresolved category fails the rule; it is never silently skipped.
func (t *Transaction) typeCompatibleWithFinality() bool {
	if t.Category == nil {
		return false
	}

	switch t.Type {
	case TypeIncome:
		return t.Category.Finality == FinalityIncome || t.Category.Finality == FinalityBoth
	case TypeExpense:
		return t.Category.Finality == FinalityExpense || t.Category.Finality == FinalityBoth
	default:
		return false
	}
}

func (t *Transaction) ageCompatibleWithType() bool {
	if t.User == nil {
		return false
	}
	return !(t.User.Age < 18 && t.Type == TypeIncome)
}
