package password

// Preset and default policy bounds.
const (
	SimpleMinLength  = 4
	DefaultMinLength = 8
	DefaultMaxLength = 64
)

// Validator wraps a single rule function behind an immutable value.
// Validators hold no mutable state, so a single instance is safe to share
// across any number of goroutines without locking.
//
// The zero Validator accepts every password.
type Validator struct {
	rule RuleFunc
}

// New wraps a rule function in a Validator. The presets returned by Simple
// and Default are built the same way; they are not special-cased internally.
func New(rule RuleFunc) Validator {
	return Validator{rule: rule}
}

// Validate checks the password against the validator's rule. It returns nil
// on success or the ValidationError for the first rule violated. There is no
// partial success: a nil error means every check passed.
func (v Validator) Validate(password string) error {
	if v.rule == nil {
		return nil
	}
	return v.rule(password)
}

// Chain composes rules into a Validator that evaluates them in order and
// stops at the first failure. It never aggregates: the same invalid password
// always yields the same single error. Nil rules are skipped.
func Chain(rules ...RuleFunc) Validator {
	return New(func(password string) error {
		for _, rule := range rules {
			if rule == nil {
				continue
			}
			if err := rule(password); err != nil {
				return err
			}
		}
		return nil
	})
}

// Simple returns the permissive preset: length >= 4, nothing else. Intended
// for low-security contexts such as tests and local development.
func Simple() Validator {
	return Chain(MinLength(SimpleMinLength))
}

// Default returns the strict preset. Rules run in a fixed order, cheapest
// first, so failure reporting is deterministic:
//
//  1. length >= 8
//  2. length <= 64
//  3. at least one ASCII uppercase letter
//  4. at least one ASCII lowercase letter
//  5. at least one ASCII digit
//  6. at least one character from SpecialCharacters
func Default() Validator {
	return Chain(
		MinLength(DefaultMinLength),
		MaxLength(DefaultMaxLength),
		RequireUppercase(),
		RequireLowercase(),
		RequireDigit(),
		RequireSpecial(),
	)
}
