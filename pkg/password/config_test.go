package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/passwordkit/pkg/password"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := password.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, password.PolicyDefault, cfg.Policy)
	assert.Equal(t, 8, cfg.MinLength)
	assert.Equal(t, 64, cfg.MaxLength)
	assert.True(t, cfg.RequireUppercase)
	assert.True(t, cfg.RequireLowercase)
	assert.True(t, cfg.RequireDigit)
	assert.True(t, cfg.RequireSpecial)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PASSWORD_POLICY", "simple")
	t.Setenv("PASSWORD_LANGUAGE", "tr")

	cfg, err := password.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, password.PolicySimple, cfg.Policy)
	assert.Equal(t, "tr", cfg.Language)
}

func TestLoadConfigInvalidValue(t *testing.T) {
	t.Setenv("PASSWORD_MIN_LENGTH", "not-a-number")

	_, err := password.LoadConfig()
	require.ErrorIs(t, err, password.ErrParsingConfig)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("default policy", func(t *testing.T) {
		t.Parallel()
		v, err := password.FromConfig(password.Config{Policy: password.PolicyDefault})
		require.NoError(t, err)

		assert.NoError(t, v.Validate("MySecurePass123!"))
		assert.ErrorIs(t, v.Validate("Pass1!"), password.ValidationError{Code: password.CodeTooShort, Limit: 8})
	})

	t.Run("simple policy", func(t *testing.T) {
		t.Parallel()
		v, err := password.FromConfig(password.Config{Policy: password.PolicySimple})
		require.NoError(t, err)

		assert.NoError(t, v.Validate("test"))
		assert.ErrorIs(t, v.Validate("abc"), password.ValidationError{Code: password.CodeTooShort, Limit: 4})
	})

	t.Run("custom policy", func(t *testing.T) {
		t.Parallel()
		v, err := password.FromConfig(password.Config{
			Policy:       password.PolicyCustom,
			MinLength:    12,
			MaxLength:    32,
			RequireDigit: true,
		})
		require.NoError(t, err)

		assert.NoError(t, v.Validate("abcdefghijk1"))
		assert.ErrorIs(t, v.Validate("abcdefghijkl"), password.ValidationError{Code: password.CodeMissingDigit})
		assert.ErrorIs(t, v.Validate("short1"), password.ValidationError{Code: password.CodeTooShort, Limit: 12})
	})

	t.Run("custom policy without max length", func(t *testing.T) {
		t.Parallel()
		v, err := password.FromConfig(password.Config{
			Policy:    password.PolicyCustom,
			MinLength: 4,
		})
		require.NoError(t, err)

		assert.NoError(t, v.Validate("abcd"))
		assert.NoError(t, v.Validate(strings.Repeat("a", 200)), "no max length rule is added when MaxLength is zero")
	})

	t.Run("unknown policy", func(t *testing.T) {
		t.Parallel()
		_, err := password.FromConfig(password.Config{Policy: "paranoid"})
		require.ErrorIs(t, err, password.ErrInvalidPolicy)
	})

	t.Run("contradictory custom bounds", func(t *testing.T) {
		t.Parallel()
		_, err := password.FromConfig(password.Config{
			Policy:    password.PolicyCustom,
			MinLength: 10,
			MaxLength: 5,
		})
		require.ErrorIs(t, err, password.ErrInvalidPolicy)

		_, err = password.FromConfig(password.Config{Policy: password.PolicyCustom, MinLength: 0})
		require.ErrorIs(t, err, password.ErrInvalidPolicy)
	})
}

func TestConfigLanguageTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.Turkish, password.Config{Language: "tr"}.LanguageTag())
	assert.Equal(t, language.English, password.Config{Language: "en"}.LanguageTag())
	assert.Equal(t, language.English, password.Config{Language: "not a tag"}.LanguageTag())
	assert.Equal(t, language.English, password.Config{}.LanguageTag())
}
