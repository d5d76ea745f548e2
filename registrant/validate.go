package registrant

import (
	"regexp"
	"strings"
)

// local@domain.tld, no embedded whitespace, exactly one @,
// at least one dot after it
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func ValidateName(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 2 && n <= 50
}

func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone accepts exactly 10 ASCII digits, no country code.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}
