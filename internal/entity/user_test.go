package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserViolations(t *testing.T) {
	tests := []struct {
		name string
		user User
		want []string
	}{
		{"valid", User{Name: "Ana Maria", Age: 30}, nil},
		{"newborn", User{Name: "José", Age: 0}, nil},
		{"upper age bound", User{Name: "Dona Benta", Age: 150}, nil},
		{"empty name", User{Name: "", Age: 30}, []string{
			"name is required",
			"name must be at least 2 characters",
		}},
		{"single char name", User{Name: "A", Age: 30}, []string{
			"name must be at least 2 characters",
		}},
		{"name too long", User{Name: strings.Repeat("a", 101), Age: 30}, []string{
			"name must be at most 100 characters",
		}},
		{"negative age", User{Name: "Ana", Age: -1}, []string{
			"age must be between 0 and 150",
		}},
		{"age above range", User{Name: "Ana", Age: 151}, []string{
			"age must be between 0 and 150",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Violations())
		})
	}
}
