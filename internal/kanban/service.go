package kanban

import (
	"fmt"
	"time"

	"kb-go/internal/model"
)

// Service is the orchestration layer for all board mutations. Every operation
// follows the same shape: validate, load the document, compute a new board by
// structurally replacing only the affected record, save the whole document,
// and emit at most one notification.
type Service struct {
	store    Store
	notifier Notifier
	logger   Logger
	clock    Clock
	idgen    IDGenerator
	colors   ColorSource
}

// NewService creates a Service with the provided dependencies.
func NewService(store Store, notifier Notifier, logger Logger, clock Clock, idgen IDGenerator, colors ColorSource) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
		colors:   colors,
	}
}

// Board returns the current board document.
func (s *Service) Board() (*model.Board, error) {
	return s.store.Load()
}

// Reset discards the persisted document and saves a fresh seed board.
func (s *Service) Reset() error {
	seed := SeedBoard()
	if err := s.store.Save(&seed); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}
	s.logger.Info("board reset to seed data")
	return nil
}

// toast emits a default-variant notification with the standard 2s duration.
func (s *Service) toast(title, description string) {
	s.notifier.Notify(Notification{
		Title:       title,
		Description: description,
		Variant:     VariantDefault,
		Duration:    2 * time.Second,
	})
}

// toastDestructive emits a destructive-variant notification.
func (s *Service) toastDestructive(title, description string) {
	s.notifier.Notify(Notification{
		Title:       title,
		Description: description,
		Variant:     VariantDestructive,
		Duration:    2 * time.Second,
	})
}

// reject reports invalid input through the notification sink and returns the
// ValidationError for the caller. The board is left unchanged.
func (s *Service) reject(reason string) error {
	s.notifier.Notify(Notification{
		Title:       "Error",
		Description: reason,
		Variant:     VariantDestructive,
		Duration:    3 * time.Second,
	})
	return &ValidationError{Reason: reason}
}

// updateCard loads the board, applies fn to a clone of the card with the
// given ID, and persists the result. A missing card ID is logged and treated
// as a no-op (nil, nil): the observable outcome is an unchanged board.
// fn may return a ValidationError to abort before anything is written.
func (s *Service) updateCard(cardID, op string, fn func(b *model.Board, c *model.Card) error) (*model.Card, error) {
	board, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}

	i := board.FindCard(cardID)
	if i < 0 {
		s.logger.Warn("card not found", "op", op, "card", cardID)
		return nil, nil
	}

	card := board.Cards[i].Clone()
	if err := fn(board, &card); err != nil {
		return nil, err
	}

	next := *board
	next.Cards = append([]model.Card(nil), board.Cards...)
	next.Cards[i] = card
	if err := s.store.Save(&next); err != nil {
		return nil, fmt.Errorf("saving board: %w", err)
	}
	return &card, nil
}
