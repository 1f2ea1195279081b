// Package session persists the bearer credential pair between runs. The store
// is injected into every component that needs authentication; only the login
// and logout paths write it.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the credential from disk on every call. Reading fresh keeps the
// session usable across process restarts without an in-memory copy going
// stale.
func (s *Store) Load() (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("reading credentials file: %w", err)
	}

	var sess entities.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return entities.Session{}, fmt.Errorf("decoding credentials file: %w", err)
	}
	return sess, nil
}

func (s *Store) Save(sess entities.Session) error {
	if sess.AccessToken == "" || sess.TokenType == "" {
		return fmt.Errorf("refusing to save partial session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating credentials dir: %w", err)
		}
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}
	return nil
}

// Clear removes the stored credential. An already-missing file is not an
// error, so logout is idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing credentials file: %w", err)
	}
	return nil
}

// AuthorizationHeader composes "{tokenType} {accessToken}" from the stored
// session. A missing session yields MissingTokenError, which callers must
// treat as a redirect to the login flow.
func (s *Store) AuthorizationHeader() (string, error) {
	sess, err := s.Load()
	if err != nil {
		return "", err
	}
	if sess.AccessToken == "" {
		return "", &apperrors.MissingTokenError{}
	}
	tokenType := sess.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + sess.AccessToken, nil
}
