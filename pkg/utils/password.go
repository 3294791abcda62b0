package utils

import "regexp"

var (
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`\d`)
	specialPattern   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
	usernamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	leadingDigit     = regexp.MustCompile(`^\d`)
)

// ValidatePasswordStrength checks the password rules employees must satisfy
// when completing account setup. Returns an empty string when valid.
func ValidatePasswordStrength(password string) string {
	switch {
	case password == "":
		return "Password is required"
	case len(password) < 8:
		return "Password must be at least 8 characters long"
	case len(password) > 128:
		return "Password must be less than 128 characters long"
	case !uppercasePattern.MatchString(password):
		return "Password must contain at least one uppercase letter"
	case !lowercasePattern.MatchString(password):
		return "Password must contain at least one lowercase letter"
	case !digitPattern.MatchString(password):
		return "Password must contain at least one number"
	case !specialPattern.MatchString(password):
		return "Password must contain at least one special character"
	}
	return ""
}

// ValidateUsername checks the username format rules. Returns an empty string
// when valid.
func ValidateUsername(username string) string {
	switch {
	case username == "":
		return "Username is required"
	case len(username) < 3:
		return "Username must be at least 3 characters long"
	case len(username) > 30:
		return "Username must be less than 30 characters long"
	case !usernamePattern.MatchString(username):
		return "Username can only contain letters, numbers, underscores, and hyphens"
	case leadingDigit.MatchString(username):
		return "Username cannot start with a number"
	}
	return ""
}
