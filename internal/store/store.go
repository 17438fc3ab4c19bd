package store

import "github.com/tickfile-dev/tickfile/internal/models"

// Store reads and writes the entire application document. Both operations
// fail soft: Load always yields a structurally valid document and Save
// reports nothing to the caller, so a request cannot distinguish "saved"
// from "silently failed to save". That trade is deliberate — the backing
// location is ephemeral and availability wins over durability here.
//
// There is no cross-request mutual exclusion. Two concurrent requests can
// both Load, mutate separate copies, and Save, with the later Save
// clobbering the earlier one (last-write-wins). A transactional
// implementation would slot in behind this interface.
type Store interface {
	Load() models.Document
	Save(doc models.Document)
}
