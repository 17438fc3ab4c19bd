package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tickfile-dev/tickfile/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStoreInitializesMissingFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, discardLogger())

	doc := s.Load()

	if doc.Users == nil || len(doc.Users) != 0 {
		t.Fatalf("expected empty user list, got %#v", doc.Users)
	}

	if _, err := os.Stat(filepath.Join(dir, dataFileName)); err != nil {
		t.Fatalf("expected data file to be created: %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir(), discardLogger())

	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	updated := created.Add(time.Hour)
	issued := created.Add(-time.Minute)

	doc := models.Document{
		Users: []models.User{{
			ID:            "user-1",
			Username:      "alice",
			PasswordHash:  "$2a$10$hash",
			Token:         "token-1",
			TokenIssuedAt: &issued,
			Todos: []models.Todo{{
				ID:        "todo-1",
				Text:      "buy milk",
				Done:      true,
				CreatedAt: created,
				UpdatedAt: &updated,
			}},
		}},
	}

	s.Save(doc)
	got := s.Load()

	if len(got.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(got.Users))
	}

	user := got.Users[0]

	if user.ID != "user-1" || user.Username != "alice" || user.PasswordHash != "$2a$10$hash" || user.Token != "token-1" {
		t.Fatalf("user fields lost in round trip: %#v", user)
	}

	if user.TokenIssuedAt == nil || !user.TokenIssuedAt.Equal(issued) {
		t.Fatalf("token issuance timestamp lost: %v", user.TokenIssuedAt)
	}

	if len(user.Todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(user.Todos))
	}

	todo := user.Todos[0]

	if todo.ID != "todo-1" || todo.Text != "buy milk" || !todo.Done {
		t.Fatalf("todo fields lost in round trip: %#v", todo)
	}

	if !todo.CreatedAt.Equal(created) {
		t.Fatalf("createdAt changed: want %v, got %v", created, todo.CreatedAt)
	}

	if todo.UpdatedAt == nil || !todo.UpdatedAt.Equal(updated) {
		t.Fatalf("updatedAt changed: %v", todo.UpdatedAt)
	}
}

func TestFileStoreLoadCorruptFileFailsSoft(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, dataFileName), []byte("not json{"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(dir, discardLogger())
	doc := s.Load()

	if doc.Users == nil || len(doc.Users) != 0 {
		t.Fatalf("expected empty document on parse failure, got %#v", doc)
	}
}

func TestFileStoreSaveFailureIsSwallowed(t *testing.T) {
	// Point at a directory that does not exist; Save must log and move on.
	s := NewFileStore(filepath.Join(t.TempDir(), "nope"), discardLogger())

	s.Save(models.Document{Users: []models.User{{ID: "u", Username: "x"}}})

	doc := s.Load()

	if len(doc.Users) != 0 {
		t.Fatalf("expected empty document after failed save, got %#v", doc)
	}
}
