package types

const (
	// ContextUserKey holds the authenticated *models.User for the request.
	ContextUserKey = "user"

	// ContextDocumentKey holds the *models.Document the user pointer
	// belongs to. Handlers mutate through the user and save this document.
	ContextDocumentKey = "document"
)
