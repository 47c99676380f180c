package kernel

import (
	"regexp"
	"strings"
)

// MaxPhoneLength bounds the raw phone string, leading '+' included.
const MaxPhoneLength = 13

var phonePattern = regexp.MustCompile(`^\+?\d{1,12}$`)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNumeric reports whether s is a non-empty string of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidPhone accepts up to 12 digits with an optional leading '+'.
func IsValidPhone(s string) bool {
	return len(s) <= MaxPhoneLength && phonePattern.MatchString(s)
}
