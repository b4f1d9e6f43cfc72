package store

import (
	"fmt"
	"os"
	"path/filepath"

	"kb-go/internal/config"
	"kb-go/internal/kanban"
)

// NewBackendFromConfig creates a Backend implementation based on the store config type.
func NewBackendFromConfig(cfg config.StoreConfig, profileID string) (kanban.Backend, error) {
	switch cfg.Type {
	case "filesystem":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for filesystem store")
		}
		return NewFileSystemBackend(filepath.Join(cfg.DataDir, profileID))
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite store")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
		return NewSQLiteBackend(filepath.Join(cfg.DataDir, profileID+".db"))
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
