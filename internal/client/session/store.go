// Package session is the single source of truth for "is a user
// authenticated". The token and profile live in a JSON file in the client's
// data directory, outside the embedded database, with an explicit
// load/save/clear lifecycle. The store doubles as the token provider
// injected into the API client and is consulted synchronously by command
// guards.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/common"
)

const fileName = "session.json"

type state struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// Store is a durable key-value session holder. All methods are safe for
// concurrent use; mutations are written through to disk immediately.
type Store struct {
	path string

	mu   sync.RWMutex
	data state
}

// NewStore returns a Store backed by a session file under dir. The file is
// not touched until Load or the first mutation.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Load reads the session file. A missing file is the unauthenticated state,
// not an error. Unreadable or corrupt storage maps to ErrStorageUnavailable.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.data = state{}
			return nil
		}
		return fmt.Errorf("%w: read session: %v", common.ErrStorageUnavailable, err)
	}

	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		return fmt.Errorf("%w: decode session: %v", common.ErrStorageUnavailable, err)
	}
	s.data = st
	return nil
}

// save persists the current state. Caller must hold the write lock.
func (s *Store) save() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("%w: write session: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Token returns the current bearer token, empty when unauthenticated.
// It also satisfies the API client's token provider interface.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	return s.save()
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.User == nil {
		return nil
	}
	u := *s.data.User
	return &u
}

func (s *Store) SetUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.data.User = nil
	} else {
		copied := *u
		s.data.User = &copied
	}
	return s.save()
}

// IsAuthenticated reports token presence only. No expiry check, no
// signature validation.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Clear wipes token and profile, e.g. on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = state{}
	return s.save()
}
