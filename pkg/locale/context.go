package locale

import (
	"context"

	"golang.org/x/text/language"
)

// languageContextKey is the key for storing the ambient language in context.
type languageContextKey struct{}

// WithLanguage stores the language in the context. The outer application
// decides the ambient language (per request, per user); validation code
// only reads it back at render time.
func WithLanguage(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the language stored in the context, or
// English when none is set.
func LanguageFromContext(ctx context.Context) language.Tag {
	lang, ok := ctx.Value(languageContextKey{}).(language.Tag)
	if !ok || lang == (language.Tag{}) {
		return language.English
	}
	return lang
}
