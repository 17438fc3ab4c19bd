package store

import (
	"encoding/json"

	"github.com/tickfile-dev/tickfile/internal/models"
)

// MemoryStore holds the serialized document in memory. It round-trips
// through JSON on Load and Save so callers see the same
// read-modify-write discipline as the file-backed store: a loaded
// document is a copy, and nothing sticks until Save.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() models.Document {
	if len(s.data) == 0 {
		return emptyDocument()
	}

	var doc models.Document

	if err := json.Unmarshal(s.data, &doc); err != nil {
		return emptyDocument()
	}

	if doc.Users == nil {
		doc.Users = []models.User{}
	}

	return doc
}

func (s *MemoryStore) Save(doc models.Document) {
	b, err := json.Marshal(doc)

	if err != nil {
		return
	}

	s.data = b
}
