package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"smssync/internal/errors"
	"smssync/internal/models"

	"github.com/sirupsen/logrus"
)

// Store owns the persisted message collection: a single pretty-printed
// JSON document rewritten wholesale on every mutation. Storage order is
// insertion order; presentation order is always derived by the caller.
type Store struct {
	path   string
	mu     sync.Mutex
	logger *logrus.Logger
}

func New(path string, logger *logrus.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load reads the full collection. On first use, when no file exists yet,
// it materializes the seed set and persists it so every subsequent call is
// idempotent over existing data.
func (s *Store) Load() ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		seed := SeedMessages()
		if err := s.write(seed); err != nil {
			return nil, err
		}
		s.logger.WithField("count", len(seed)).Info("Seeded message store")
		return seed, nil
	}
	if err != nil {
		return nil, errors.NewPersistenceError("read", err)
	}

	var messages []models.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, errors.NewPersistenceError("decode", err)
	}
	return messages, nil
}

// Save rewrites the entire collection. The write goes to a temp file in
// the same directory followed by a rename, so a concurrent reader never
// observes a torn document.
func (s *Store) Save(messages []models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(messages)
}

func (s *Store) write(messages []models.Message) error {
	if messages == nil {
		messages = []models.Message{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(messages); err != nil {
		return errors.NewPersistenceError("encode", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.NewPersistenceError("write", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewPersistenceError("write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceError("write", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceError("write", fmt.Errorf("replace %s: %w", s.path, err))
	}
	return nil
}

// IndexByID locates a message by id, returning -1 when absent. Linear
// scan: O(n), fine at demo scale but not meant for large collections.
func IndexByID(messages []models.Message, id string) int {
	for i := range messages {
		if messages[i].ID == id {
			return i
		}
	}
	return -1
}
