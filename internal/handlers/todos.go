package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tickfile-dev/tickfile/internal/apperrors"
	"github.com/tickfile-dev/tickfile/internal/todos"
	"github.com/tickfile-dev/tickfile/internal/utils"
)

type CreateTodoRequest struct {
	Text string `json:"text"`
}

func (h *Handler) ListTodos(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"todos": todos.List(user)})
}

func (h *Handler) CreateTodo(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	doc, err := utils.GetDocument(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req CreateTodoRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, apperrors.New(apperrors.Validation, "text required"))
		return
	}

	todo, err := todos.Add(user, req.Text)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.store.Save(*doc)
	ctx.JSON(http.StatusCreated, todo)
}

func (h *Handler) ToggleTodo(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	doc, err := utils.GetDocument(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	todo, err := todos.Toggle(user, ctx.Param("id"))

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.store.Save(*doc)
	ctx.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	doc, err := utils.GetDocument(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := todos.Remove(user, ctx.Param("id")); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.store.Save(*doc)
	ctx.Status(http.StatusNoContent)
}

// ClearTodos removes completed todos, but only when the request opts in
// with ?completed=true. Without the flag it responds 204 untouched.
func (h *Handler) ClearTodos(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	doc, err := utils.GetDocument(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if ctx.Query("completed") == "true" {
		todos.ClearCompleted(user)
		h.store.Save(*doc)
	}

	ctx.Status(http.StatusNoContent)
}
