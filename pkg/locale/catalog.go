package locale

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/passwordkit/pkg/password"
)

// Catalog renders password validation errors from messages loaded at
// construction time. It is immutable after NewCatalog returns, so a single
// instance is safe for concurrent use without locking.
//
// Catalog implements password.Describer.
type Catalog struct {
	messages    map[language.Tag]map[string]string
	tags        []language.Tag
	matcher     language.Matcher
	defaultLang language.Tag
	logger      *slog.Logger
	logMissing  bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the requested one has no
// messages. Default is English.
func WithDefaultLanguage(lang language.Tag) Option {
	return func(c *Catalog) {
		if lang != (language.Tag{}) {
			c.defaultLang = lang
		}
	}
}

// WithLogger provides a logger for the catalog. If not specified, a discard
// logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingMessageLogging controls whether lookups that fall back to
// another language are logged. Default is false to avoid noisy logs.
func WithMissingMessageLogging(log bool) Option {
	return func(c *Catalog) {
		c.logMissing = log
	}
}

// NewCatalog loads messages from source and builds the catalog. Language
// codes in the source must be valid BCP 47 tags.
func NewCatalog(ctx context.Context, source Source, opts ...Option) (*Catalog, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		defaultLang: language.English,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	raw, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoMessages
	}

	c.messages = make(map[language.Tag]map[string]string, len(raw))
	for code, msgs := range raw {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguageCode, fmt.Errorf("%q: %w", code, err))
		}
		c.messages[tag] = msgs
		c.tags = append(c.tags, tag)
	}

	// The default language leads the matcher's preference list so that
	// unmatched requests resolve to it rather than to an arbitrary entry.
	slices.SortFunc(c.tags, func(a, b language.Tag) int {
		switch {
		case a == c.defaultLang:
			return -1
		case b == c.defaultLang:
			return 1
		default:
			return 0
		}
	})
	c.matcher = language.NewMatcher(c.tags)

	c.logger.InfoContext(ctx, "message catalog loaded", "languages", c.languageCodes())
	return c, nil
}

// Languages returns the languages the catalog holds messages for, default
// language first.
func (c *Catalog) Languages() []language.Tag {
	langs := make([]language.Tag, len(c.tags))
	copy(langs, c.tags)
	return langs
}

func (c *Catalog) languageCodes() []string {
	codes := make([]string, len(c.tags))
	for i, tag := range c.tags {
		codes[i] = tag.String()
	}
	return codes
}

// Describe renders err in the requested language. Lookup order: the best
// catalog match for lang, then the default language, then the error's
// built-in English text. The result is never empty.
func (c *Catalog) Describe(err password.ValidationError, lang language.Tag) string {
	key := err.TranslationKey()
	values := err.TranslationValues()

	_, idx, conf := c.matcher.Match(lang)
	matched := c.tags[idx]
	if conf == language.No {
		matched = c.defaultLang
	}

	if tmpl, ok := c.messages[matched][key]; ok {
		return substitute(tmpl, values)
	}

	if c.logMissing {
		c.logger.Warn("message not found", "lang", matched.String(), "key", key)
	}

	if matched != c.defaultLang {
		if tmpl, ok := c.messages[c.defaultLang][key]; ok {
			return substitute(tmpl, values)
		}
	}

	return err.Error()
}

// Negotiate picks the best catalog language for an Accept-Language header
// (RFC 7231). Malformed or empty headers resolve to the default language.
func (c *Catalog) Negotiate(acceptLanguage string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return c.defaultLang
	}

	_, idx, conf := c.matcher.Match(desired...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.tags[idx]
}

// paramRegex finds named placeholders in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with values from the map.
// Unknown placeholders are kept verbatim so broken templates stay visible.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
