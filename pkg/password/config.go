package password

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Policy names accepted by Config.Policy.
const (
	PolicySimple  = "simple"
	PolicyDefault = "default"
	PolicyCustom  = "custom"
)

// Config selects the active validator from the environment. Which preset is
// active is an application concern ("default in production, simple in
// tests"), so it lives in configuration rather than in code.
//
// The defaults reproduce the Default preset; the custom policy knobs only
// take effect when Policy is "custom".
type Config struct {
	Policy           string `env:"PASSWORD_POLICY" envDefault:"default"`
	MinLength        int    `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`
	MaxLength        int    `env:"PASSWORD_MAX_LENGTH" envDefault:"64"`
	RequireUppercase bool   `env:"PASSWORD_REQUIRE_UPPERCASE" envDefault:"true"`
	RequireLowercase bool   `env:"PASSWORD_REQUIRE_LOWERCASE" envDefault:"true"`
	RequireDigit     bool   `env:"PASSWORD_REQUIRE_DIGIT" envDefault:"true"`
	RequireSpecial   bool   `env:"PASSWORD_REQUIRE_SPECIAL" envDefault:"true"`
	Language         string `env:"PASSWORD_LANGUAGE" envDefault:"en"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads the configuration from environment variables, loading a
// .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LanguageTag parses the configured language. Unparseable values resolve to
// English, matching the rendering fallback.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return defaultLanguage
	}
	return tag
}

// FromConfig builds the validator the configuration describes. Unknown
// policy names and contradictory custom bounds return ErrInvalidPolicy.
func FromConfig(cfg Config) (Validator, error) {
	switch cfg.Policy {
	case PolicySimple:
		return Simple(), nil
	case PolicyDefault:
		return Default(), nil
	case PolicyCustom:
		return customValidator(cfg)
	default:
		return Validator{}, fmt.Errorf("%w: unknown policy %q", ErrInvalidPolicy, cfg.Policy)
	}
}

func customValidator(cfg Config) (Validator, error) {
	if cfg.MinLength < 1 {
		return Validator{}, fmt.Errorf("%w: min length %d must be positive", ErrInvalidPolicy, cfg.MinLength)
	}
	if cfg.MaxLength > 0 && cfg.MaxLength < cfg.MinLength {
		return Validator{}, fmt.Errorf("%w: max length %d is below min length %d", ErrInvalidPolicy, cfg.MaxLength, cfg.MinLength)
	}

	rules := []RuleFunc{MinLength(cfg.MinLength)}
	if cfg.MaxLength > 0 {
		rules = append(rules, MaxLength(cfg.MaxLength))
	}
	if cfg.RequireUppercase {
		rules = append(rules, RequireUppercase())
	}
	if cfg.RequireLowercase {
		rules = append(rules, RequireLowercase())
	}
	if cfg.RequireDigit {
		rules = append(rules, RequireDigit())
	}
	if cfg.RequireSpecial {
		rules = append(rules, RequireSpecial())
	}
	return Chain(rules...), nil
}
