package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

const accessCodeTTL = 10 * time.Minute

var accessCodePattern = regexp.MustCompile(`^\d{6}$`)

// GenerateAccessCode returns a random six digit login code.
func GenerateAccessCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// GenerateAccessCodeWithExpiry returns a code together with its expiry time.
func GenerateAccessCodeWithExpiry() (string, time.Time) {
	return GenerateAccessCode(), time.Now().Add(accessCodeTTL)
}

func IsValidAccessCode(code string) bool {
	return accessCodePattern.MatchString(code)
}

func IsAccessCodeExpired(expiresAt time.Time) bool {
	return time.Now().After(expiresAt)
}
