// Package password provides a small, composable password-validation engine
// with a closed failure taxonomy and localized error descriptions.
//
// A Validator wraps a single rule function. The two presets and any custom
// rule are all instances of the same abstraction:
//
//	v := password.Default()
//	if err := v.Validate(candidate); err != nil {
//		verr, _ := password.AsValidationError(err)
//		msg := password.Describe(verr, language.Turkish)
//		// surface msg to the user
//	}
//
// # Architecture
//
// Rules are plain functions of shape func(string) error. Chain composes them
// into a Validator that evaluates in order and stops at the first failure,
// so the same invalid password always reports the same error. There is no
// hidden global state: every validator is an immutable value, safe to share
// across goroutines.
//
// Custom validators reuse the same building blocks:
//
//	v := password.Chain(
//		password.MinLength(12),
//		password.RequireDigit(),
//		func(s string) error {
//			// delegate to a preset and layer checks on top
//			return password.Simple().Validate(s)
//		},
//	)
//
// # Error Handling
//
// Every failure is a ValidationError, a comparable value identifying the
// violated rule (Code) plus the length bound where relevant. The taxonomy is
// closed; custom rules map failures onto the existing codes. Errors are
// expected, recoverable conditions for the caller to inspect, never treated
// as fatal.
//
// # Localization
//
// Describe renders an error in English or Turkish and falls back to English
// for any other language. Implement Describer (see pkg/locale) to plug in a
// backend loaded from translation files.
//
// # Configuration
//
// Config selects the active policy from PASSWORD_* environment variables,
// so applications can run the default preset in production and the simple
// one in tests without code changes.
//
// Length checks count Unicode code points rather than bytes: an 8-character
// minimum admits eight multi-byte characters. Character-class checks match
// ASCII ranges only.
package password
