package password

import (
	"fmt"

	"golang.org/x/text/language"
)

// Describer renders validation errors into human-readable text. The built-in
// Describe function covers English and Turkish; richer backends (for example
// a catalog loaded from translation files) implement the same interface and
// can be swapped in wherever a Describer is accepted.
type Describer interface {
	Describe(err ValidationError, lang language.Tag) string
}

// defaultLanguage is the fail-closed fallback: requests for a language
// without messages render in English rather than returning an error or an
// empty string.
var defaultLanguage = language.English

// supportedLanguages is ordered so the matcher prefers English when nothing
// better matches.
var supportedLanguages = []language.Tag{
	language.English,
	language.Turkish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// messages maps language -> code -> template. Length templates take the
// violated bound as their single fmt argument. Every code must have an entry
// for every supported language; TestDescribeTotality enforces this.
var messages = map[language.Tag]map[Code]string{
	language.English: {
		CodeTooShort:         "password must be at least %d characters long",
		CodeTooLong:          "password must be at most %d characters long",
		CodeMissingUppercase: "password must contain at least one uppercase letter",
		CodeMissingLowercase: "password must contain at least one lowercase letter",
		CodeMissingDigit:     "password must contain at least one digit",
		CodeMissingSpecial:   "password must contain at least one special character (" + SpecialCharacters + ")",
	},
	language.Turkish: {
		CodeTooShort:         "şifre en az %d karakter uzunluğunda olmalıdır",
		CodeTooLong:          "şifre en fazla %d karakter uzunluğunda olmalıdır",
		CodeMissingUppercase: "şifre en az bir büyük harf içermelidir",
		CodeMissingLowercase: "şifre en az bir küçük harf içermelidir",
		CodeMissingDigit:     "şifre en az bir rakam içermelidir",
		CodeMissingSpecial:   "şifre en az bir özel karakter içermelidir (" + SpecialCharacters + ")",
	},
}

// SupportedLanguages returns the languages the built-in messages cover.
func SupportedLanguages() []language.Tag {
	langs := make([]language.Tag, len(supportedLanguages))
	copy(langs, supportedLanguages)
	return langs
}

// Describe renders err in the requested language. Matching follows BCP 47
// semantics, so regional variants resolve to their base language ("tr-TR"
// renders Turkish). Unsupported languages fall back to English. The result
// is never empty, even for a code this package did not produce.
func Describe(err ValidationError, lang language.Tag) string {
	_, idx, _ := languageMatcher.Match(lang)
	tmpl, ok := messages[supportedLanguages[idx]][err.Code]
	if !ok {
		tmpl, ok = messages[defaultLanguage][err.Code]
	}
	if !ok {
		return "password is invalid"
	}

	switch err.Code {
	case CodeTooShort, CodeTooLong:
		return fmt.Sprintf(tmpl, err.Limit)
	default:
		return tmpl
	}
}
