package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tickfile-dev/tickfile/internal/models"
)

const dataFileName = "db.json"

// FileStore keeps the document as one pretty-printed JSON file. No
// locking and no atomic rename: the last completed Save wins.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   filepath.Join(dir, dataFileName),
		logger: logger,
	}
}

func emptyDocument() models.Document {
	return models.Document{Users: []models.User{}}
}

// Load reads the document, creating an empty one first if the file does
// not exist. Any read or parse failure is logged and swallowed; callers
// always get a valid document back.
func (s *FileStore) Load() models.Document {
	b, err := os.ReadFile(s.path)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.Save(emptyDocument())
			return emptyDocument()
		}
		s.logger.Error("failed to read data file", "path", s.path, "error", err)
		return emptyDocument()
	}

	var doc models.Document

	if err := json.Unmarshal(b, &doc); err != nil {
		s.logger.Error("failed to parse data file", "path", s.path, "error", err)
		return emptyDocument()
	}

	if doc.Users == nil {
		doc.Users = []models.User{}
	}

	return doc
}

// Save overwrites the whole file. Failures are logged, never returned.
func (s *FileStore) Save(doc models.Document) {
	b, err := json.MarshalIndent(doc, "", "  ")

	if err != nil {
		s.logger.Error("failed to marshal document", "error", err)
		return
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.logger.Error("failed to write data file", "path", s.path, "error", err)
	}
}
