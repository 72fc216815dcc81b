package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/passwordkit/pkg/password"
)

func TestDescribeTotality(t *testing.T) {
	t.Parallel()

	langs := password.SupportedLanguages()
	require.NotEmpty(t, langs)

	for _, lang := range langs {
		for _, code := range password.Codes() {
			msg := password.Describe(password.ValidationError{Code: code, Limit: 8}, lang)
			assert.NotEmpty(t, msg, "code %s must render in %s", code, lang)
		}
	}
}

func TestDescribeEnglish(t *testing.T) {
	t.Parallel()

	msg := password.Describe(password.ValidationError{Code: password.CodeTooShort, Limit: 8}, language.English)
	assert.Contains(t, msg, "8")
	assert.Contains(t, msg, "characters")

	msg = password.Describe(password.ValidationError{Code: password.CodeTooLong, Limit: 64}, language.English)
	assert.Contains(t, msg, "64")
	assert.Contains(t, msg, "at most")

	msg = password.Describe(password.ValidationError{Code: password.CodeMissingSpecial}, language.English)
	assert.Contains(t, msg, password.SpecialCharacters)
}

func TestDescribeTurkish(t *testing.T) {
	t.Parallel()

	msg := password.Describe(password.ValidationError{Code: password.CodeTooShort, Limit: 8}, language.Turkish)
	assert.Contains(t, msg, "8")
	assert.Contains(t, msg, "karakter")

	msg = password.Describe(password.ValidationError{Code: password.CodeMissingUppercase}, language.Turkish)
	assert.Contains(t, msg, "büyük harf")
}

func TestDescribeLanguageMatching(t *testing.T) {
	t.Parallel()

	err := password.ValidationError{Code: password.CodeMissingDigit}
	english := password.Describe(err, language.English)
	turkish := password.Describe(err, language.Turkish)
	require.NotEqual(t, english, turkish)

	t.Run("regional variant resolves to base language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, turkish, password.Describe(err, language.MustParse("tr-TR")))
		assert.Equal(t, english, password.Describe(err, language.AmericanEnglish))
	})

	t.Run("unsupported language falls back to English", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, english, password.Describe(err, language.French))
		assert.Equal(t, english, password.Describe(err, language.Japanese))
		assert.Equal(t, english, password.Describe(err, language.Und))
	})
}

func TestDescribeUnknownCode(t *testing.T) {
	t.Parallel()

	// A code outside the taxonomy still renders something readable.
	msg := password.Describe(password.ValidationError{Code: "made_up"}, language.English)
	assert.NotEmpty(t, msg)
}

func TestValidationErrorError(t *testing.T) {
	t.Parallel()

	err := password.ValidationError{Code: password.CodeTooShort, Limit: 8}
	assert.Equal(t, password.Describe(err, language.English), err.Error())
}

func TestTranslationMetadata(t *testing.T) {
	t.Parallel()

	short := password.ValidationError{Code: password.CodeTooShort, Limit: 8}
	assert.Equal(t, "validation.password.too_short", short.TranslationKey())
	assert.Equal(t, map[string]any{"limit": 8}, short.TranslationValues())

	missing := password.ValidationError{Code: password.CodeMissingDigit}
	assert.Equal(t, "validation.password.missing_digit", missing.TranslationKey())
	assert.Nil(t, missing.TranslationValues())
}
