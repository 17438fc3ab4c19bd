package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tickfile-dev/tickfile/internal/apperrors"
	"github.com/tickfile-dev/tickfile/internal/auth"
	"github.com/tickfile-dev/tickfile/internal/store"
)

type Handler struct {
	store  store.Store
	auth   *auth.Manager
	logger *slog.Logger
}

func New(s store.Store, manager *auth.Manager, logger *slog.Logger) *Handler {
	return &Handler{
		store:  s,
		auth:   manager,
		logger: logger,
	}
}

func (h *Handler) respondError(ctx *gin.Context, err error) {
	status, message := apperrors.Status(err)

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", ctx.FullPath(), "error", err)
	}

	ctx.JSON(status, gin.H{"error": message})
}
