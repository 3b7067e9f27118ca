// Package store persists the project catalog and the contact log as JSON
// values in a key-value backend.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"folio/internal/catalog"
	"folio/internal/contact"
	"sync"
)

const (
	ProjectsKey = "projects"
	MessagesKey = "contact-messages"
)

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

var Kinds = []string{KindFile, KindSQLite, KindMemory}

type Store struct {
	backend Backend
	// guards the read-append-write of the message log
	logMu sync.Mutex
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open builds a store on the backend named by kind. dataDir is ignored for
// the memory backend.
func Open(kind, dataDir string) (*Store, error) {
	var (
		backend Backend
		err     error
	)
	switch kind {
	case KindFile, "":
		backend, err = NewFileBackend(dataDir)
	case KindSQLite:
		backend, err = NewSQLiteBackend(dataDir)
	case KindMemory:
		backend = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unknown store backend %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return New(backend), nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// SaveProjects replaces the stored sequence. Equal input gives equal bytes.
func (s *Store) SaveProjects(projects []catalog.Project) error {
	if projects == nil {
		projects = []catalog.Project{}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	return s.backend.Put(ProjectsKey, data)
}

// LoadProjects reports found=false when the key is absent or blank.
func (s *Store) LoadProjects() ([]catalog.Project, bool, error) {
	data, ok, err := s.get(ProjectsKey)
	if err != nil || !ok {
		return nil, false, err
	}

	var projects []catalog.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, false, &catalog.CorruptStoreError{Key: ProjectsKey, Err: err}
	}
	if projects == nil {
		// literal null
		return nil, false, nil
	}
	return projects, true, nil
}

// AppendMessage adds msg to the end of the contact log. An unreadable log is
// left untouched.
func (s *Store) AppendMessage(msg contact.Message) error {
	s.logMu.Lock()
	defer s.logMu.Unlock()

	messages, err := s.messages()
	if err != nil {
		return err
	}
	messages = append(messages, msg)

	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to encode contact messages: %w", err)
	}
	return s.backend.Put(MessagesKey, data)
}

func (s *Store) Messages() ([]contact.Message, error) {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	return s.messages()
}

func (s *Store) messages() ([]contact.Message, error) {
	data, ok, err := s.get(MessagesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []contact.Message{}, nil
	}

	var messages []contact.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, &catalog.CorruptStoreError{Key: MessagesKey, Err: err}
	}
	if messages == nil {
		messages = []contact.Message{}
	}
	return messages, nil
}

func (s *Store) get(key string) ([]byte, bool, error) {
	data, err := s.backend.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}
