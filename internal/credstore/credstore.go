// Package credstore persists the current session credential to a single
// durable record on disk. It has no network or cross-component side effects;
// corrupt or unreadable content is treated as an absent session.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"panel/internal/entities"
)

type record struct {
	AccessToken string     `json:"access_token"`
	User        userRecord `json:"user"`
}

type userRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record{
		AccessToken: session.AccessToken,
		User: userRecord{
			ID:       session.User.ID,
			Username: session.User.Username,
			FullName: session.User.FullName,
			Role:     session.User.Role.String(),
		},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Load returns the persisted session, or (nil, nil) when the record is
// absent or unparsable. It never fails on corrupt content.
func (s *Store) Load() (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil
	}
	if rec.AccessToken == "" {
		return nil, nil
	}

	return &entities.Session{
		AccessToken: rec.AccessToken,
		User: entities.User{
			ID:       rec.User.ID,
			Username: rec.User.Username,
			FullName: rec.User.FullName,
			Role:     entities.Role(rec.User.Role),
		},
	}, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// Token reports the persisted bearer credential, if any. Used by the
// transport client to attach the Authorization header.
func (s *Store) Token() (string, bool) {
	session, err := s.Load()
	if err != nil || session == nil {
		return "", false
	}
	return session.AccessToken, true
}
