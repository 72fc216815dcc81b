package locale

import "errors"

var (
	// Catalog construction
	ErrNilSource           = errors.New("message source is nil")
	ErrNoMessages          = errors.New("source produced no messages")
	ErrInvalidLanguageCode = errors.New("invalid language code in message source")

	// Parsing
	ErrFailedToParseJSON = errors.New("failed to parse JSON messages")
	ErrFailedToParseYAML = errors.New("failed to parse YAML messages")

	// Loading
	ErrLoadCancelled   = errors.New("loading messages cancelled")
	ErrFailedToRead    = errors.New("failed to read message file")
	ErrFailedToParse   = errors.New("failed to parse message file")
	ErrFailedToReadDir = errors.New("failed to read message directory")
	ErrNoParserForFile = errors.New("no parser for file extension")
	ErrNoMessageFiles  = errors.New("no message files found")
)
