package testutil

import (
	"kb-go/internal/encryption"
	"kb-go/internal/kanban"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() kanban.Encryptor {
	return encryption.NewTestEncryptor()
}
