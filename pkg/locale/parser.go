package locale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages maps language code -> message key -> template. Nested structures
// in the source files are flattened into dot-separated keys at parse time,
// so lookups are a single map access.
type Messages map[string]map[string]string

// Parser turns raw file content into Messages. The top level of the content
// must be keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Messages, error)

	// SupportsExtension reports whether the parser handles files with the
	// given extension. A leading dot is accepted ("yaml" and ".yaml" are
	// both valid).
	SupportsExtension(ext string) bool
}

// ParserForFile returns a parser based on the filename extension, or nil if
// no parser handles it.
func ParserForFile(filename string) Parser {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return JSONParser{}
	case "yaml", "yml":
		return YAMLParser{}
	default:
		return nil
	}
}

// JSONParser parses JSON message files.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (Messages, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return flattenLanguages(data)
}

func (JSONParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser parses YAML message files.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (Messages, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return flattenLanguages(data)
}

func (YAMLParser) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// flattenLanguages converts the decoded top level (language -> nested maps)
// into flat dot-keyed Messages.
func flattenLanguages(data map[string]any) (Messages, error) {
	result := make(Messages, len(data))
	for lang, val := range data {
		nested, ok := normalizeMap(val)
		if !ok {
			return nil, fmt.Errorf("language %q: expected a map of messages, got %T", lang, val)
		}

		flat := make(map[string]string)
		if err := flattenInto(flat, "", nested); err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		result[lang] = flat
	}

	if len(result) == 0 {
		return nil, ErrNoMessages
	}
	return result, nil
}

func flattenInto(dst map[string]string, prefix string, m map[string]any) error {
	for key, val := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if nested, ok := normalizeMap(val); ok {
			if err := flattenInto(dst, full, nested); err != nil {
				return err
			}
			continue
		}

		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("key %q: expected string or map, got %T", full, val)
		}
		dst[full] = s
	}
	return nil
}

// normalizeMap handles both map[string]any and the map[any]any some YAML
// decoders produce.
func normalizeMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	default:
		return nil, false
	}
}
