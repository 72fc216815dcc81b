// Package locale renders password validation errors from message catalogs
// loaded at startup, for applications that manage translations in files
// instead of relying on the built-in English and Turkish messages.
//
// A Catalog is built once from a Source (in-memory map, file, directory, or
// embedded filesystem) and is immutable afterwards. It implements
// password.Describer, so it drops in wherever the built-in renderer is used:
//
//	//go:embed translations
//	var translations embed.FS
//
//	catalog, err := locale.NewCatalog(ctx, locale.NewFSSource(translations, "translations"))
//	if err != nil {
//		return err
//	}
//
//	if err := validator.Validate(candidate); err != nil {
//		if verr, ok := password.AsValidationError(err); ok {
//			msg := catalog.Describe(verr, catalog.Negotiate(r.Header.Get("Accept-Language")))
//		}
//	}
//
// Message files are keyed by BCP 47 language code at the top level; nested
// maps are flattened into dot-separated keys, so both layouts below resolve
// to "validation.password.too_short":
//
//	en:
//	  validation:
//	    password:
//	      too_short: "password must be at least %{limit} characters long"
//
//	en:
//	  validation.password.too_short: "password must be at least %{limit} characters long"
//
// Templates use %{name} placeholders filled from the error's translation
// values. Lookups for a language the catalog does not hold fall back to the
// default language and finally to the error's built-in English text, so
// rendering never produces an empty string.
package locale
