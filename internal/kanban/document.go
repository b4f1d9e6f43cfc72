package kanban

import (
	"bytes"
	"encoding/json"
	"fmt"

	"kb-go/internal/model"
)

// BoardKey is the fixed key the board document is persisted under, for every
// backend.
const BoardKey = "kanbanBoard"

// Backend is the local-storage primitive the board document is persisted to.
// Implementations store opaque bytes under string keys.
type Backend interface {
	// Get retrieves the value stored under key. ok is false when the key has
	// never been written.
	Get(key string) (data []byte, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(key string, data []byte) error

	// Close releases backend resources.
	Close() error
}

// Store is the document store the service reads and writes the board through.
type Store interface {
	Load() (*model.Board, error)
	Save(b *model.Board) error
}

// DocumentStore persists the single board document through a Backend.
// It owns the JSON codec, seed defaults, the backfill rule for documents
// written before newer fields existed, and optional at-rest encryption.
type DocumentStore struct {
	backend Backend
	enc     Encryptor
	dec     DecryptionContext
}

var _ Store = (*DocumentStore)(nil)

// NewDocumentStore creates a plaintext document store over the given backend.
func NewDocumentStore(backend Backend) *DocumentStore {
	return &DocumentStore{backend: backend}
}

// NewEncryptedDocumentStore creates a document store that encrypts the
// document on save. Load requires Unlock to have been called first.
func NewEncryptedDocumentStore(backend Backend, enc Encryptor) *DocumentStore {
	return &DocumentStore{backend: backend, enc: enc}
}

// Unlock unlocks the private key for the session so Load can decrypt.
func (s *DocumentStore) Unlock(passphrase string) error {
	if s.enc == nil {
		return nil
	}
	dec, err := s.enc.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking store: %w", err)
	}
	s.dec = dec
	return nil
}

// Load reads the board document. An absent key yields the seed board; a
// document that fails to parse also falls back to the seed board. Documents
// missing fields added after initial release are backfilled so every card has
// non-nil sub-collections.
func (s *DocumentStore) Load() (*model.Board, error) {
	data, ok, err := s.backend.Get(BoardKey)
	if err != nil {
		return nil, fmt.Errorf("reading board document: %w", err)
	}
	if !ok {
		b := SeedBoard()
		return &b, nil
	}

	if s.enc != nil {
		if s.dec == nil {
			return nil, fmt.Errorf("board document is encrypted: unlock required")
		}
		var buf bytes.Buffer
		if err := s.dec.Decrypt(bytes.NewReader(data), &buf); err != nil {
			return nil, fmt.Errorf("decrypting board document: %w", err)
		}
		data = buf.Bytes()
	}

	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		seed := SeedBoard()
		return &seed, nil
	}

	Backfill(&b)
	return &b, nil
}

// Save writes the whole board document. Called after every successful
// mutation; there are no incremental writes.
func (s *DocumentStore) Save(b *model.Board) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding board document: %w", err)
	}

	if s.enc != nil {
		var buf bytes.Buffer
		if err := s.enc.Encrypt(bytes.NewReader(data), &buf); err != nil {
			return fmt.Errorf("encrypting board document: %w", err)
		}
		data = buf.Bytes()
	}

	if err := s.backend.Put(BoardKey, data); err != nil {
		return fmt.Errorf("writing board document: %w", err)
	}
	return nil
}

// Close closes the underlying backend.
func (s *DocumentStore) Close() error {
	return s.backend.Close()
}

// Backfill fills in defaults for fields absent from a previously persisted
// document: missing top-level collections fall back to the seed data, and
// every card's optional sub-collections become empty rather than nil, so
// consumers never see absent containers.
func Backfill(b *model.Board) {
	seed := SeedBoard()
	if b.Columns == nil {
		b.Columns = seed.Columns
	}
	if b.Cards == nil {
		b.Cards = seed.Cards
	}
	if b.Users == nil {
		b.Users = seed.Users
	}
	for i := range b.Cards {
		card := &b.Cards[i]
		if card.Tags == nil {
			card.Tags = []string{}
		}
		if card.AssignedUsers == nil {
			card.AssignedUsers = []string{}
		}
		if card.Comments == nil {
			card.Comments = []model.Comment{}
		}
		if card.Attachments == nil {
			card.Attachments = []model.Attachment{}
		}
		if card.VideoLinks == nil {
			card.VideoLinks = []model.VideoLink{}
		}
	}
}
