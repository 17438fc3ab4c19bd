package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/tickfile-dev/tickfile/internal/apperrors"
	"github.com/tickfile-dev/tickfile/internal/auth"
	"github.com/tickfile-dev/tickfile/internal/store"
	"github.com/tickfile-dev/tickfile/internal/types"
)

// AuthMiddleware loads the document and resolves the bearer token to a
// user before any todo handler runs. The document is loaded exactly once
// per request; handlers mutate it through the context user pointer and
// save the same copy, so each request is one read-modify-write cycle.
func AuthMiddleware(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		doc := s.Load()

		user, err := auth.Authenticate(ctx.GetHeader("Authorization"), &doc)

		if err != nil {
			status, message := apperrors.Status(err)
			ctx.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Set(types.ContextDocumentKey, &doc)
		ctx.Next()
	}
}
