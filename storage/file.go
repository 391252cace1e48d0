package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
)

// File stores all keys in a single human readable JSON object.
type File struct {
	mu   sync.Mutex
	path string
}

// OpenFile returns a File storage at path. The file is created on first Put.
func OpenFile(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage folder: %w", err)
		}
	}
	return &File{path: filepath.Clean(path)}, nil
}

// Get returns the value of key.
func (s *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return nil, err
	}
	value, ok := content[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// Put writes the value of key, other keys are preserved. The file is
// replaced atomically.
func (s *File) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("value of %q is not valid json", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil && !errors.Is(err, ErrNotFound) {
		// an unreadable file is replaced rather than blocking every write.
		content = nil
	}
	if content == nil {
		content = make(map[string]json.RawMessage)
	}
	content[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storage-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %q: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %q: %w", s.path, err)
	}
	return nil
}

// Close is a no-op, the file is not kept open.
func (s *File) Close() error { return nil }

// read decodes the whole file. A missing file is ErrNotFound.
func (s *File) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", s.path, err)
	}
	content := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("format error %q: %w", s.path, err)
	}
	return content, nil
}
