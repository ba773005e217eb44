package entity

import (
	"strings"
	"unicode/utf8"
)

type User struct {
	ID   int64
	Name string
	Age  int
}

// Violations runs every user rule and collects the failures.
func (u *User) Violations() []string {
	var violations []string

	if strings.TrimSpace(u.Name) == "" {
		violations = append(violations, "name is required")
	}
	if utf8.RuneCountInString(u.Name) < 2 {
		violations = append(violations, "name must be at least 2 characters")
	}
	if utf8.RuneCountInString(u.Name) > 100 {
		violations = append(violations, "name must be at most 100 characters")
	}
	if u.Age < 0 || u.Age > 150 {
		violations = append(violations, "age must be between 0 and 150")
	}

	return violations
}
