// Package blob names and stores clipboard images by the sha256 of their bytes,
// so identical images always map to the same file.
package blob

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Ext is appended to every blob name. Payloads are PNG as produced by
	// the image helper.
	Ext = ".png"

	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Hash returns the lowercase hex sha256 of data.
func Hash(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// Name returns the content-addressed file name for data.
func Name(data []byte) string {
	return Hash(data) + Ext
}

// IsValidName reports whether name looks like something Name produced.
func IsValidName(name string) bool {
	hash, ok := strings.CutSuffix(name, Ext)
	if !ok || len(hash) != 64 {
		return false
	}
	for _, r := range hash {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return false
		}
	}
	return true
}

// Store writes blobs into a directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. An empty dir means the working
// directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// PathFor returns the path a payload would be stored at. With the default
// root this is just the bare file name.
func (s *Store) PathFor(data []byte) string {
	return filepath.Join(s.dir, Name(data))
}

// Write stores data at PathFor(data) and returns that path. An existing file
// at the path is left untouched.
func (s *Store) Write(data []byte) (string, error) {
	path := s.PathFor(data)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(s.dir, DirPerm); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if errors.Is(err, os.ErrExist) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("write blob %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close blob %s: %w", path, err)
	}
	return path, nil
}

// Read returns the bytes stored at path, as recorded in an Image item.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return data, nil
}
