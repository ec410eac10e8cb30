// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var batchCodeRegex = regexp.MustCompile(`^[A-Za-z]{1,2}\d{2}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// NormalizeName canonicalizes a startup name for duplicate comparison:
// trimmed and lowercased, so " Acme " collides with "acme".
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidBatchCode reports whether a batch label matches the short form
// used across the directory, e.g. "B12" or "SU24". Advisory only.
func ValidBatchCode(code string) bool {
	return batchCodeRegex.MatchString(strings.TrimSpace(code))
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
