package store

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a single file under a base directory.
// Writes replace the whole file, mirroring the full-rewrite semantics the
// rest of the system assumes.
type FileStore struct {
	dir string
}

// NewFileStore creates the base directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, &Error{Message: "base directory is required"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Message: "failed to create base directory", Cause: err}
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns the conventional store location under the user's home
// directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".instagrowth"
	}
	return filepath.Join(home, ".instagrowth")
}

// Get reads the value for key. A missing file is reported as ok=false, not
// an error.
func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, &Error{Key: key, Message: "read failed", Cause: err}
	}
	return string(data), true, nil
}

// Set writes the value for key, replacing any previous value. The credential
// file is written with owner-only permissions.
func (s *FileStore) Set(key, value string) error {
	perm := os.FileMode(0o644)
	if key == KeyCredential {
		perm = 0o600
	}
	if err := os.WriteFile(s.path(key), []byte(value), perm); err != nil {
		return &Error{Key: key, Message: "write failed", Cause: err}
	}
	return nil
}

// Delete removes the value for key. Deleting a missing key is a no-op.
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return &Error{Key: key, Message: "delete failed", Cause: err}
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys are fixed constants, but sanitize anyway so a bad key cannot
	// escape the base directory.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe+".json")
}
