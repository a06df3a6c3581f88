package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/luminahr/luminahr-go/luminahr"
)

// fileState is the on-disk session shape. LegacyToken covers files
// written by older releases that stored only an auth_token string.
type fileState struct {
	Token       string         `json:"token"`
	User        *luminahr.User `json:"user,omitempty"`
	LegacyToken string         `json:"auth_token,omitempty"`
}

// FileSession persists the token and user snapshot to a JSON file so
// the login survives across CLI invocations. It satisfies
// luminahr.Session; the transport clears the file on any 401.
type FileSession struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *luminahr.User
}

// Open loads the session at path, creating an anonymous session when
// the file does not exist yet.
func Open(path string) (*FileSession, error) {
	s := &FileSession{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt session file is treated as logged out.
		return s, nil
	}
	s.token = state.Token
	if s.token == "" {
		s.token = state.LegacyToken
	}
	s.user = state.User
	return s, nil
}

func (s *FileSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *FileSession) User() *luminahr.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *FileSession) Set(token string, user *luminahr.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.persist()
}

func (s *FileSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	os.Remove(s.path)
}

func (s *FileSession) persist() {
	data, err := json.MarshalIndent(fileState{Token: s.token, User: s.user}, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	os.WriteFile(s.path, data, 0o600)
}
