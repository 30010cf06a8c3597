package auth

import (
	"regexp"
	"unicode/utf8"
)

const (
	minLoginPasswordLength    = 6
	minRegisterPasswordLength = 8
	verificationCodeLength    = 6
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the local@domain.tld shape only.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePassword requires at least 8 ASCII letters or digits, with at
// least one of each and nothing else.
func ValidatePassword(password string) bool {
	if len(password) < minRegisterPasswordLength {
		return false
	}
	var hasLetter, hasDigit bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// ValidateCode only checks the length; codes are never compared against an
// issued value.
func ValidateCode(code string) bool {
	return utf8.RuneCountInString(code) == verificationCodeLength
}
