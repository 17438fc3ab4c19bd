package todos

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tickfile-dev/tickfile/internal/apperrors"
	"github.com/tickfile-dev/tickfile/internal/models"
)

// Operations on a user's todo collection. Everything here mutates in
// memory only; persisting the surrounding document is the caller's job.

// List returns the collection in insertion order, oldest first.
func List(user *models.User) []models.Todo {
	if user.Todos == nil {
		return []models.Todo{}
	}

	return user.Todos
}

// Add appends a todo with trimmed text to the end of the collection.
func Add(user *models.User, text string) (models.Todo, error) {
	text = strings.TrimSpace(text)

	if text == "" {
		return models.Todo{}, apperrors.New(apperrors.Validation, "text required")
	}

	todo := models.Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Done:      false,
		CreatedAt: time.Now().UTC(),
	}

	user.Todos = append(user.Todos, todo)

	return todo, nil
}

// Toggle flips the done flag and stamps UpdatedAt.
func Toggle(user *models.User, id string) (models.Todo, error) {
	for i := range user.Todos {
		if user.Todos[i].ID != id {
			continue
		}

		now := time.Now().UTC()
		user.Todos[i].Done = !user.Todos[i].Done
		user.Todos[i].UpdatedAt = &now

		return user.Todos[i], nil
	}

	return models.Todo{}, apperrors.New(apperrors.NotFound, "not found")
}

// Remove deletes the todo with the given id.
func Remove(user *models.User, id string) error {
	for i := range user.Todos {
		if user.Todos[i].ID == id {
			user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)
			return nil
		}
	}

	return apperrors.New(apperrors.NotFound, "not found")
}

// ClearCompleted drops every done todo. Nothing to drop is not an error.
func ClearCompleted(user *models.User) {
	remaining := user.Todos[:0]

	for _, todo := range user.Todos {
		if !todo.Done {
			remaining = append(remaining, todo)
		}
	}

	user.Todos = remaining
}
