package document

import "github.com/google/uuid"

// NewBlockID generates a fresh block id for programmatically built documents.
func NewBlockID() string {
	return "blk_" + uuid.NewString()
}
