package kanban

import (
	"fmt"
	"strings"

	"kb-go/internal/model"
)

// DragState tracks the card active in a single drag gesture. Start records
// the dragged card; FinishDrag consumes the state and clears it
// unconditionally, even when the drop is aborted.
type DragState struct {
	activeCard string
}

// Start records the card being dragged. This is purely a highlight concern;
// no data changes until the gesture ends.
func (d *DragState) Start(cardID string) { d.activeCard = cardID }

// ActiveCard returns the card currently being dragged, or "".
func (d *DragState) ActiveCard() string { return d.activeCard }

// Clear resets the gesture.
func (d *DragState) Clear() { d.activeCard = "" }

// IsCardID reports whether id is in the card namespace.
func IsCardID(id string) bool { return strings.HasPrefix(id, "card-") }

// IsColumnID reports whether id is in the column namespace.
func IsColumnID(id string) bool { return strings.HasPrefix(id, "column-") }

// FinishDrag resolves the end of a drag gesture. overID is the element the
// card was released over, classified by its ID namespace:
//
//   - empty or unrecognized target: abort, no mutation
//   - a column: move the dragged card to that column (end of visual order)
//   - a card in a different column: move to that card's column
//   - a card in the same column: reorder, landing at the target's position
//
// The drag state is cleared in every case.
func (s *Service) FinishDrag(d *DragState, overID string) error {
	defer d.Clear()

	active := d.ActiveCard()
	if active == "" || overID == "" || !IsCardID(active) {
		return nil
	}

	switch {
	case IsColumnID(overID):
		return s.moveCardToColumn(active, overID)

	case IsCardID(overID):
		board, err := s.store.Load()
		if err != nil {
			return fmt.Errorf("loading board: %w", err)
		}
		activeIdx := board.FindCard(active)
		overIdx := board.FindCard(overID)
		if activeIdx < 0 || overIdx < 0 {
			s.logger.Warn("card not found", "op", "FinishDrag", "active", active, "over", overID)
			return nil
		}

		activeCol := board.Cards[activeIdx].ColumnID
		overCol := board.Cards[overIdx].ColumnID
		if activeCol != overCol {
			return s.moveCardToColumn(active, overCol)
		}
		return s.reorderWithinColumn(board, overCol, active, overID)

	default:
		return nil
	}
}

// moveCardToColumn sets the card's ColumnID. With no separate rank, the card
// lands at the end of the target column's visual order.
func (s *Service) moveCardToColumn(cardID, columnID string) error {
	board, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	i := board.FindCard(cardID)
	col := board.FindColumn(columnID)
	if i < 0 || col < 0 {
		s.logger.Warn("drop target not found", "op", "FinishDrag", "card", cardID, "column", columnID)
		return nil
	}

	next := *board
	next.Cards = append([]model.Card(nil), board.Cards...)
	moved := next.Cards[i].Clone()
	moved.ColumnID = columnID
	next.Cards[i] = moved
	if err := s.store.Save(&next); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("card moved", "card", cardID, "column", columnID)
	s.toast("Card moved", "Card moved to "+board.Columns[col].Title)
	return nil
}

// reorderWithinColumn moves the dragged card to the target card's position.
// Because display order is nothing but the order of Board.Cards, the
// reordering physically splices the underlying slice: the column's cards are
// extracted in their current relative order, the dragged card is removed and
// reinserted at the target's (pre-removal) index, and the full collection is
// reassembled as the other columns' cards followed by the reordered
// subsequence.
func (s *Service) reorderWithinColumn(board *model.Board, columnID, activeID, overID string) error {
	var column, others []model.Card
	for _, c := range board.Cards {
		if c.ColumnID == columnID {
			column = append(column, c)
		} else {
			others = append(others, c)
		}
	}

	activeIdx, overIdx := -1, -1
	for i, c := range column {
		switch c.ID {
		case activeID:
			activeIdx = i
		case overID:
			overIdx = i
		}
	}
	if activeIdx < 0 || overIdx < 0 || activeIdx == overIdx {
		return nil
	}

	moved := column[activeIdx]
	column = append(column[:activeIdx], column[activeIdx+1:]...)
	column = append(column[:overIdx], append([]model.Card{moved}, column[overIdx:]...)...)

	next := *board
	next.Cards = append(others, column...)
	if err := s.store.Save(&next); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("card reordered", "card", activeID, "column", columnID)
	s.toast("Card reordered", "Card position updated")
	return nil
}
