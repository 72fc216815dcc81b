package password

import (
	"strings"
	"unicode/utf8"
)

// SpecialCharacters is the fixed set accepted by RequireSpecial.
const SpecialCharacters = "!&^%$#@()/"

// RuleFunc is a single password rule. It returns nil when the password
// satisfies the rule and a ValidationError otherwise. Rules must be pure
// functions of their input: no I/O, no shared state.
type RuleFunc func(password string) error

// MinLength requires the password to be at least n characters long.
// Length is counted in Unicode code points, not bytes, so a multi-byte
// character contributes one to the count.
func MinLength(n int) RuleFunc {
	return func(password string) error {
		if utf8.RuneCountInString(password) < n {
			return ValidationError{Code: CodeTooShort, Limit: n}
		}
		return nil
	}
}

// MaxLength requires the password to be at most n characters long,
// counted in Unicode code points.
func MaxLength(n int) RuleFunc {
	return func(password string) error {
		if utf8.RuneCountInString(password) > n {
			return ValidationError{Code: CodeTooLong, Limit: n}
		}
		return nil
	}
}

// RequireUppercase requires at least one ASCII uppercase letter (A-Z).
// Non-ASCII uppercase letters do not count.
func RequireUppercase() RuleFunc {
	return func(password string) error {
		if !containsRange(password, 'A', 'Z') {
			return ValidationError{Code: CodeMissingUppercase}
		}
		return nil
	}
}

// RequireLowercase requires at least one ASCII lowercase letter (a-z).
// Non-ASCII lowercase letters do not count.
func RequireLowercase() RuleFunc {
	return func(password string) error {
		if !containsRange(password, 'a', 'z') {
			return ValidationError{Code: CodeMissingLowercase}
		}
		return nil
	}
}

// RequireDigit requires at least one ASCII digit (0-9).
func RequireDigit() RuleFunc {
	return func(password string) error {
		if !containsRange(password, '0', '9') {
			return ValidationError{Code: CodeMissingDigit}
		}
		return nil
	}
}

// RequireSpecial requires at least one character from SpecialCharacters.
func RequireSpecial() RuleFunc {
	return func(password string) error {
		if !strings.ContainsAny(password, SpecialCharacters) {
			return ValidationError{Code: CodeMissingSpecial}
		}
		return nil
	}
}

// containsRange reports whether s contains a rune in [lo, hi]. Direct range
// scans keep the character-class checks allocation-free and avoid regexp
// compilation for what are fixed ASCII ranges.
func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
