package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tickfile-dev/tickfile/internal/models"
	"github.com/tickfile-dev/tickfile/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (*models.User, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return nil, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(*models.User)

	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}

func GetDocument(ctx *gin.Context) (*models.Document, error) {
	value, exists := ctx.Get(types.ContextDocumentKey)

	if !exists {
		return nil, fmt.Errorf("document not loaded for request")
	}

	doc, ok := value.(*models.Document)

	if !ok {
		return nil, fmt.Errorf("invalid document type in context")
	}

	return doc, nil
}
