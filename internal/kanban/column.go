package kanban

import (
	"fmt"
	"strings"

	"kb-go/internal/model"
)

// AddColumn creates a new column with a fresh ID and a random palette color
// and appends it to the board.
func (s *Service) AddColumn(title string) (*model.Column, error) {
	if strings.TrimSpace(title) == "" {
		return nil, s.reject("Column title cannot be empty")
	}

	board, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}

	col := model.Column{
		ID:    "column-" + s.idgen.New(),
		Title: title,
		Color: s.colors.Pick(),
	}

	next := *board
	next.Columns = append(append([]model.Column(nil), board.Columns...), col)
	if err := s.store.Save(&next); err != nil {
		return nil, fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("column added", "column", col.ID, "title", col.Title)
	s.toast("Column added", fmt.Sprintf("New column %q has been added", title))
	return &col, nil
}

// EditColumn replaces the column with the same ID wholesale. An unknown ID is
// logged and treated as a no-op.
func (s *Service) EditColumn(col model.Column) error {
	if strings.TrimSpace(col.Title) == "" {
		return s.reject("Column title cannot be empty")
	}

	board, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	i := board.FindColumn(col.ID)
	if i < 0 {
		s.logger.Warn("column not found", "op", "EditColumn", "column", col.ID)
		return nil
	}

	next := *board
	next.Columns = append([]model.Column(nil), board.Columns...)
	next.Columns[i] = col
	if err := s.store.Save(&next); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("column updated", "column", col.ID, "title", col.Title)
	s.toast("Column updated", "Column has been updated successfully")
	return nil
}

// DeleteColumn removes the column and, in the same document update, every
// card whose ColumnID matches it.
func (s *Service) DeleteColumn(columnID string) error {
	board, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	if board.FindColumn(columnID) < 0 {
		s.logger.Warn("column not found", "op", "DeleteColumn", "column", columnID)
		return nil
	}

	next := *board
	next.Columns = make([]model.Column, 0, len(board.Columns)-1)
	for _, c := range board.Columns {
		if c.ID != columnID {
			next.Columns = append(next.Columns, c)
		}
	}
	next.Cards = make([]model.Card, 0, len(board.Cards))
	for _, c := range board.Cards {
		if c.ColumnID != columnID {
			next.Cards = append(next.Cards, c)
		}
	}

	if err := s.store.Save(&next); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("column deleted", "column", columnID, "cards_removed", len(board.Cards)-len(next.Cards))
	s.toastDestructive("Column deleted", "Column and all its cards have been deleted")
	return nil
}
