package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFileName is the fixed key under which the access token persists,
// mirroring the single localStorage entry of the web client.
const tokenFileName = "token"

// TokenStore persists the opaque access token across process restarts.
// Implementations never validate token shape.
type TokenStore interface {
	Get() (string, bool)
	Set(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token in memory only. Used in tests and
// short-lived tools.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set && s.token != ""
}

func (s *MemoryTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}

// FileTokenStore persists the token as a single file under a directory,
// typically os.UserConfigDir()/radar-clientes.
type FileTokenStore struct {
	dir string
}

// NewFileTokenStore creates a store rooted at dir, creating it when needed.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileTokenStore{dir: dir}, nil
}

// DefaultFileTokenStore places the token under the user config directory.
func DefaultFileTokenStore() (*FileTokenStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFileTokenStore(filepath.Join(base, "radar-clientes"))
}

func (s *FileTokenStore) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

func (s *FileTokenStore) Get() (string, bool) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

func (s *FileTokenStore) Set(token string) error {
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
