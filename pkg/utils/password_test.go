package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"valid", "Str0ng!pass", ""},
		{"empty", "", "Password is required"},
		{"too short", "Ab1!xyz", "Password must be at least 8 characters long"},
		{"too long", strings.Repeat("Aa1!", 40), "Password must be less than 128 characters long"},
		{"no uppercase", "weak1pass!", "Password must contain at least one uppercase letter"},
		{"no lowercase", "WEAK1PASS!", "Password must contain at least one lowercase letter"},
		{"no digit", "WeakPass!!", "Password must contain at least one number"},
		{"no special", "WeakPass11", "Password must contain at least one special character"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantMsg, ValidatePasswordStrength(tc.password))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantMsg  string
	}{
		{"valid", "jane_doe-1", ""},
		{"empty", "", "Username is required"},
		{"too short", "ab", "Username must be at least 3 characters long"},
		{"too long", strings.Repeat("a", 31), "Username must be less than 30 characters long"},
		{"bad characters", "jane doe", "Username can only contain letters, numbers, underscores, and hyphens"},
		{"leading digit", "1jane", "Username cannot start with a number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantMsg, ValidateUsername(tc.username))
		})
	}
}
