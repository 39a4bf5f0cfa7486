// Package naming generates unpredictable filename components for
// temporary files and directories.
package naming

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UUID generates names by rendering a random UUIDv4 as 32 hex characters,
// without separators, so the result is safe on any filesystem.
type UUID struct{}

// Name returns a fresh 32-character hex string.
func (UUID) Name() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
