package password

import "errors"

// Code identifies which rule a password failed. The set of codes is closed:
// every rule in this package reports one of them, and every code has a
// rendering in every supported language.
type Code string

const (
	CodeTooShort         Code = "too_short"
	CodeTooLong          Code = "too_long"
	CodeMissingUppercase Code = "missing_uppercase"
	CodeMissingLowercase Code = "missing_lowercase"
	CodeMissingDigit     Code = "missing_digit"
	CodeMissingSpecial   Code = "missing_special"
)

// Codes returns all validation failure codes. The slice is a fresh copy on
// every call, so callers may reorder it freely.
func Codes() []Code {
	return []Code{
		CodeTooShort,
		CodeTooLong,
		CodeMissingUppercase,
		CodeMissingLowercase,
		CodeMissingDigit,
		CodeMissingSpecial,
	}
}

// ValidationError reports a single failed password rule. It is a comparable
// value type: two errors with the same Code and Limit are equal, so callers
// can match them with == or errors.Is.
//
// Limit carries the violated length bound for CodeTooShort and CodeTooLong
// and is zero for the character-class codes.
type ValidationError struct {
	Code  Code
	Limit int
}

// Error returns the English description of the failure.
func (e ValidationError) Error() string {
	return Describe(e, defaultLanguage)
}

// TranslationKey returns the message key used by localization backends.
func (e ValidationError) TranslationKey() string {
	return "validation.password." + string(e.Code)
}

// TranslationValues returns the named parameters for the message template.
func (e ValidationError) TranslationValues() map[string]any {
	switch e.Code {
	case CodeTooShort, CodeTooLong:
		return map[string]any{"limit": e.Limit}
	default:
		return nil
	}
}

// AsValidationError extracts a ValidationError from err, unwrapping as
// needed. The second return value reports whether one was found.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return ValidationError{}, false
}

// Configuration errors.
var (
	// ErrInvalidPolicy is returned when a policy name or its bounds cannot
	// produce a working validator.
	ErrInvalidPolicy = errors.New("invalid password policy")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into a Config.
	ErrParsingConfig = errors.New("failed to parse password config from environment")
)
