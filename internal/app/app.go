package app

import (
	"fmt"
	"os"
	"time"

	"kb-go/internal/config"
	"kb-go/internal/encryption"
	"kb-go/internal/kanban"
	"kb-go/internal/store"
)

// PassphraseFunc supplies the passphrase for an encrypted board store.
// The CLI passes a terminal prompt; tests pass a literal.
type PassphraseFunc func() (string, error)

// KanbanApp is the application layer between the CLI and the kanban Service.
// It constructs all dependencies from config and manages the store lifecycle
// on Close.
type KanbanApp struct {
	cfg     *config.Config
	docs    *kanban.DocumentStore
	service *kanban.Service
	logFile *os.File
}

// NewKanbanApp creates a fully wired KanbanApp from the given config.
// operation identifies the CLI command being run (e.g. "AddCard", "FinishDrag").
// The caller must call Close when done.
func NewKanbanApp(cfg *config.Config, operation string, passphrase PassphraseFunc) (*KanbanApp, error) {
	backend, err := store.NewBackendFromConfig(cfg.Store, cfg.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("creating store backend: %w", err)
	}

	var docs *kanban.DocumentStore
	if cfg.Encryption.Enabled {
		enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("creating encryptor: %w", err)
		}
		if !enc.IsConfigured() {
			backend.Close()
			return nil, fmt.Errorf("encryption enabled but keys are missing: run `kb crypt init`")
		}
		docs = kanban.NewEncryptedDocumentStore(backend, enc)

		if passphrase == nil {
			backend.Close()
			return nil, fmt.Errorf("encrypted store requires a passphrase")
		}
		pass, err := passphrase()
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		if err := docs.Unlock(pass); err != nil {
			backend.Close()
			return nil, err
		}
	} else {
		docs = kanban.NewDocumentStore(backend)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = logger.With("operation", operation)

	notifier := NewToastWriter(os.Stdout, os.Stderr)
	svc := kanban.NewService(
		docs,
		notifier,
		&slogAdapter{l: logger},
		kanban.RealClock{},
		kanban.UUIDGenerator{},
		kanban.RandomColors{},
	)

	return &KanbanApp{
		cfg:     cfg,
		docs:    docs,
		service: svc,
		logFile: logFile,
	}, nil
}

// Service returns the board service.
func (a *KanbanApp) Service() *kanban.Service { return a.service }

// CurrentUser returns the configured display name: the mock identity provider.
// Empty when the user has never "signed in".
func (a *KanbanApp) CurrentUser() string { return a.cfg.UserName }

// Close closes the document store and the log file.
func (a *KanbanApp) Close() error {
	var firstErr error
	if err := a.docs.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}
