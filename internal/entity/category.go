package entity

import (
	"FinancialBack/internal/api/category"
	"strings"
	"unicode/utf8"
)

// Finality controls which transaction types a category may classify.
type Finality int

const (
	FinalityIncome Finality = iota
	FinalityExpense
	FinalityBoth
)

// ParseFinality maps the wire vocabulary to the stored code. Input is
// case-insensitive; anything outside the vocabulary is a malformed-input error.
func ParseFinality(s string) (Finality, error) {
	switch strings.ToLower(s) {
	case "income":
		return FinalityIncome, nil
	case "expense":
		return FinalityExpense, nil
	case "both":
		return FinalityBoth, nil
	default:
		return 0, category.ErrInvalidFinality
	}
}

func (f Finality) String() string {
	switch f {
	case FinalityIncome:
		return "income"
	case FinalityExpense:
		return "expense"
	case FinalityBoth:
		return "both"
	default:
		return "unknown"
	}
}

type Category struct {
	ID          int64
	Description string
	Finality    Finality
}

// Violations runs every category rule and collects the failures.
// An empty slice means the category is valid.
func (c *Category) Violations() []string {
	var violations []string

	if strings.TrimSpace(c.Description) == "" {
		violations = append(violations, "description is required")
	}
	if utf8.RuneCountInString(c.Description) < 2 {
		violations = append(violations, "description must be at least 2 characters")
	}
	if utf8.RuneCountInString(c.Description) > 100 {
		violations = append(violations, "description must be at most 100 characters")
	}

	return violations
}
