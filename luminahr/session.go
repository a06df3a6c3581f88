package luminahr

import "sync"

// Session is the persisted credential capability the transport depends
// on. Implementations must be safe for concurrent use; the transport
// reads on every request and clears on any 401.
type Session interface {
	// Token returns the stored bearer token, empty when anonymous.
	Token() string
	// User returns the cached user snapshot, nil when anonymous.
	User() *User
	// Set stores the token and user snapshot from a login or signup.
	Set(token string, user *User)
	// Clear drops the token and user, returning to anonymous.
	Clear()
}

// MemorySession is the default in-process session store.
type MemorySession struct {
	mu    sync.RWMutex
	token string
	user  *User
}

func NewMemorySession() *MemorySession {
	return &MemorySession{}
}

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *MemorySession) Set(token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}
