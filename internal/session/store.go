package session

import (
	"encoding/json"
	"errors"
	"os"
)

// Store persists a Session. Load returns an empty session when nothing is
// stored; Clear removes every session value at once.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session in a single JSON file, the CLI/desktop
// equivalent of the browser's local storage keys.
type FileStore struct {
	Path string
}

func (f FileStore) Load() (Session, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt session file is the same as no session; drop it so it
		// cannot linger on disk.
		_ = os.Remove(f.Path)
		return Session{}, nil
	}
	return sess, nil
}

func (f FileStore) Save(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

func (f FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-process store for tests and embedded use.
type MemStore struct {
	sess Session
	set  bool
}

func (m *MemStore) Load() (Session, error) {
	if !m.set {
		return Session{}, nil
	}
	return m.sess, nil
}

func (m *MemStore) Save(sess Session) error {
	m.sess = sess
	m.set = true
	return nil
}

func (m *MemStore) Clear() error {
	m.sess = Session{}
	m.set = false
	return nil
}
