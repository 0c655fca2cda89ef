// Package storage persists the authored card collection to a local,
// file-backed key-value store.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/atinyakov/JokeDeck/internal/models"
)

// cardsKey is the single key the authored collection is stored under.
const cardsKey = "userJokes"

// FileStore is a file-backed store rooted at a directory. Each key maps to
// one JSON file inside the directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// New returns a FileStore rooted at dir. The directory is created on the
// first write.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// SaveCards replaces the persisted authored collection.
func (s *FileStore) SaveCards(cards []models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(cardsKey), data, 0o600)
}

// LoadCards returns the persisted authored collection. A missing file loads
// as an empty collection; unreadable or unparseable data also yields an empty
// collection, with the error reported for logging only.
func (s *FileStore) LoadCards() ([]models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(cardsKey))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Card{}, nil
		}
		return []models.Card{}, err
	}
	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return []models.Card{}, err
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}
