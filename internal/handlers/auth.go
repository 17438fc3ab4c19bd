package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tickfile-dev/tickfile/internal/apperrors"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Signup(ctx *gin.Context) {
	var req CredentialsRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, apperrors.New(apperrors.Validation, "username and password required"))
		return
	}

	session, err := h.auth.Signup(req.Username, req.Password)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

func (h *Handler) Login(ctx *gin.Context) {
	var req CredentialsRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, apperrors.New(apperrors.Validation, "username and password required"))
		return
	}

	session, err := h.auth.Login(req.Username, req.Password)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}
