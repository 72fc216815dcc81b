package locale

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// Source supplies the message catalog data. Implementations must be safe to
// call once at construction time; the catalog never reloads.
type Source interface {
	Load(ctx context.Context) (Messages, error)
}

// MapSource serves messages from an in-memory map, mostly useful in tests
// and for small embedded catalogs defined in code.
type MapSource struct {
	Data Messages
}

func (s MapSource) Load(context.Context) (Messages, error) {
	if len(s.Data) == 0 {
		return nil, ErrNoMessages
	}
	return s.Data, nil
}

// FileSource loads messages from a single file.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a FileSource, inferring the parser from the file
// extension. Returns nil if the extension is not supported or path is empty.
func NewFileSource(path string) *FileSource {
	if path == "" {
		return nil
	}
	parser := ParserForFile(path)
	if parser == nil {
		return nil
	}
	return &FileSource{parser: parser, path: path}
}

func (s *FileSource) Load(ctx context.Context) (Messages, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("message file %q is empty", s.path)
	}

	msgs, err := s.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return msgs, nil
}

// DirSource loads and merges all supported message files from a directory.
// A file that fails to parse aborts the load; partially loaded catalogs
// would silently drop translations.
type DirSource struct {
	path string
}

// NewDirSource creates a DirSource. Returns nil if path is empty.
func NewDirSource(path string) *DirSource {
	if path == "" {
		return nil
	}
	return &DirSource{path: path}
}

func (s *DirSource) Load(ctx context.Context) (Messages, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", s.path)
	}

	return loadFS(ctx, os.DirFS(s.path), ".")
}

// FSSource loads messages from an fs.FS, typically an embed.FS so the
// catalog ships inside the binary.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates an FSSource reading from dir within fsys. Returns nil
// if fsys is nil or dir is empty.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	if fsys == nil || dir == "" {
		return nil
	}
	return &FSSource{fsys: fsys, dir: dir}
}

func (s *FSSource) Load(ctx context.Context) (Messages, error) {
	return loadFS(ctx, s.fsys, s.dir)
}

// loadFS walks a single directory level of fsys, parsing every file a
// parser exists for and merging the results per language.
func loadFS(ctx context.Context, fsys fs.FS, dir string) (Messages, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	merged := make(Messages)
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		path := entry.Name()
		if dir != "." {
			path = filepath.ToSlash(filepath.Join(dir, entry.Name()))
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Join(ErrFailedToRead, fmt.Errorf("%s: %w", path, err))
		}
		if len(content) == 0 {
			continue
		}

		msgs, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParse, fmt.Errorf("%s: %w", path, err))
		}

		for lang, flat := range msgs {
			if merged[lang] == nil {
				merged[lang] = make(map[string]string, len(flat))
			}
			maps.Copy(merged[lang], flat)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, errors.Join(ErrNoMessageFiles, fmt.Errorf("directory %q", dir))
	}
	return merged, nil
}
