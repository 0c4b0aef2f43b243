package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/thorn-jmh/errorst"
)

// Store is the durable document contract of the generator: one structured
// JSON document per key. Write creates or overwrites; there is no retry or
// rollback anywhere above it.
type Store interface {
	Read(key string, out any) error
	Write(key string, doc any) error
}

// FileStore keeps one <key>.json file per document under Root. Keys may
// contain slashes; Write prepares the directory before writing.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Root, filepath.FromSlash(key)+".json")
}

// Read decodes the document stored under key into out.
func (s *FileStore) Read(key string, out any) error {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return errorst.NewError("failed to read document %s: %v", key, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errorst.NewError("failed to unmarshal document %s: %v", key, err)
	}
	return nil
}

// Write persists doc under key, creating parent directories first.
func (s *FileStore) Write(key string, doc any) error {
	p := s.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errorst.NewError("failed to prepare location for %s: %v", key, err)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errorst.NewError("failed to marshal document %s: %v", key, err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return errorst.NewError("failed to write document %s: %v", key, err)
	}
	return nil
}
