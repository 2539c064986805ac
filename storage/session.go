package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Session is the locally persisted visitor state: a client-generated
// identifier stable across runs, plus the set of banner ids dismissed
// on this profile. Writes are last-write-wins; two concurrent clients
// sharing the file race exactly the way two browser tabs do, which is
// acceptable for this data.
type Session struct {
	ID               string   `json:"session_id"`
	DismissedBanners []string `json:"dismissed_banners"`
}

// LoadOrCreateSession reads the persisted session, generating and
// saving a fresh one the first time this profile is used.
func LoadOrCreateSession() (*Session, error) {
	path, err := SessionPath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			session := &Session{ID: uuid.NewString()}
			if err := SaveSession(session); err != nil {
				return nil, err
			}
			return session, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("session path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var session Session
	if err := json.NewDecoder(file).Decode(&session); err != nil {
		return nil, err
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
		if err := SaveSession(&session); err != nil {
			return nil, err
		}
	}
	return &session, nil
}

func SaveSession(session *Session) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}
	path, err := SessionPath()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(session)
}

func ClearSession() error {
	path, err := SessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Dismiss records a banner id and reports whether it was newly added.
func (s *Session) Dismiss(bannerID string) bool {
	if s.IsDismissed(bannerID) {
		return false
	}
	s.DismissedBanners = append(s.DismissedBanners, bannerID)
	return true
}

func (s *Session) IsDismissed(bannerID string) bool {
	for _, id := range s.DismissedBanners {
		if id == bannerID {
			return true
		}
	}
	return false
}
