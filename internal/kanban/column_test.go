package kanban_test

import (
	"testing"
	"time"

	"kb-go/internal/kanban"
	"kb-go/internal/testutil"
)

func TestService_AddColumn(t *testing.T) {
	t.Run("appends a column with a generated ID and picked color", func(t *testing.T) {
		svc, notifier := testutil.NewTestService()

		col, err := svc.AddColumn("Review")
		if err != nil {
			t.Fatalf("AddColumn() error = %v", err)
		}
		if col.ID != "column-id-1" {
			t.Errorf("column ID = %q, want %q", col.ID, "column-id-1")
		}
		if col.Title != "Review" {
			t.Errorf("column title = %q, want %q", col.Title, "Review")
		}
		if col.Color != "#6366f1" {
			t.Errorf("column color = %q, want %q", col.Color, "#6366f1")
		}

		board, err := svc.Board()
		if err != nil {
			t.Fatalf("Board() error = %v", err)
		}
		if len(board.Columns) != 4 {
			t.Fatalf("column count = %d, want 4", len(board.Columns))
		}
		if board.Columns[3].ID != "column-id-1" {
			t.Errorf("last column = %q, want the new column", board.Columns[3].ID)
		}

		toast := notifier.Last()
		if toast.Title != "Column added" {
			t.Errorf("toast title = %q, want %q", toast.Title, "Column added")
		}
		if toast.Description != `New column "Review" has been added` {
			t.Errorf("toast description = %q", toast.Description)
		}
		if toast.Duration != 2*time.Second {
			t.Errorf("toast duration = %v, want 2s", toast.Duration)
		}
	})

	t.Run("rejects a blank title and leaves the board unchanged", func(t *testing.T) {
		svc, notifier := testutil.NewTestService()

		_, err := svc.AddColumn("   ")
		if !kanban.IsValidation(err) {
			t.Fatalf("AddColumn() error = %v, want a validation error", err)
		}

		board, _ := svc.Board()
		if len(board.Columns) != 3 {
			t.Errorf("column count = %d, want 3", len(board.Columns))
		}

		toast := notifier.Last()
		if toast.Title != "Error" {
			t.Errorf("toast title = %q, want %q", toast.Title, "Error")
		}
		if toast.Variant != kanban.VariantDestructive {
			t.Errorf("toast variant = %q, want destructive", toast.Variant)
		}
		if toast.Duration != 3*time.Second {
			t.Errorf("toast duration = %v, want 3s", toast.Duration)
		}
	})
}

func TestService_EditColumn(t *testing.T) {
	t.Run("replaces the matching column wholesale", func(t *testing.T) {
		svc, notifier := testutil.NewTestService()

		board, _ := svc.Board()
		col := board.Columns[0]
		col.Title = "Backlog"
		col.Color = "#f59e0b"

		if err := svc.EditColumn(col); err != nil {
			t.Fatalf("EditColumn() error = %v", err)
		}

		board, _ = svc.Board()
		if board.Columns[0].Title != "Backlog" {
			t.Errorf("column title = %q, want %q", board.Columns[0].Title, "Backlog")
		}
		if board.Columns[0].Color != "#f59e0b" {
			t.Errorf("column color = %q, want %q", board.Columns[0].Color, "#f59e0b")
		}
		if notifier.Last().Title != "Column updated" {
			t.Errorf("toast title = %q, want %q", notifier.Last().Title, "Column updated")
		}
	})

	t.Run("rejects a blank title", func(t *testing.T) {
		svc, _ := testutil.NewTestService()

		board, _ := svc.Board()
		col := board.Columns[0]
		col.Title = ""

		if err := svc.EditColumn(col); !kanban.IsValidation(err) {
			t.Fatalf("EditColumn() error = %v, want a validation error", err)
		}

		board, _ = svc.Board()
		if board.Columns[0].Title != "To Do" {
			t.Errorf("column title = %q, want unchanged %q", board.Columns[0].Title, "To Do")
		}
	})

	t.Run("unknown column is a no-op", func(t *testing.T) {
		svc, notifier := testutil.NewTestService()

		col := kanban.SeedBoard().Columns[0]
		col.ID = "column-missing"
		if err := svc.EditColumn(col); err != nil {
			t.Fatalf("EditColumn() error = %v", err)
		}
		if notifier.Count() != 0 {
			t.Errorf("notification count = %d, want 0", notifier.Count())
		}
	})
}

func TestService_DeleteColumn(t *testing.T) {
	t.Run("removes the column and all its cards", func(t *testing.T) {
		svc, notifier := testutil.NewTestService()

		if err := svc.DeleteColumn("column-1"); err != nil {
			t.Fatalf("DeleteColumn() error = %v", err)
		}

		board, _ := svc.Board()
		if len(board.Columns) != 2 {
			t.Errorf("column count = %d, want 2", len(board.Columns))
		}
		// card-1 and card-2 lived in column-1; only card-3 survives.
		if len(board.Cards) != 1 {
			t.Fatalf("card count = %d, want 1", len(board.Cards))
		}
		if board.Cards[0].ID != "card-3" {
			t.Errorf("surviving card = %q, want %q", board.Cards[0].ID, "card-3")
		}

		toast := notifier.Last()
		if toast.Title != "Column deleted" {
			t.Errorf("toast title = %q, want %q", toast.Title, "Column deleted")
		}
		if toast.Variant != kanban.VariantDestructive {
			t.Errorf("toast variant = %q, want destructive", toast.Variant)
		}
	})

	t.Run("unknown column is a no-op", func(t *testing.T) {
		svc, notifier := testutil.NewTestService()

		if err := svc.DeleteColumn("column-missing"); err != nil {
			t.Fatalf("DeleteColumn() error = %v", err)
		}

		board, _ := svc.Board()
		if len(board.Columns) != 3 || len(board.Cards) != 3 {
			t.Errorf("board changed: %d columns, %d cards", len(board.Columns), len(board.Cards))
		}
		if notifier.Count() != 0 {
			t.Errorf("notification count = %d, want 0", notifier.Count())
		}
	})
}

func TestService_Reset(t *testing.T) {
	svc, _ := testutil.NewTestService()

	if err := svc.DeleteColumn("column-1"); err != nil {
		t.Fatalf("DeleteColumn() error = %v", err)
	}
	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	board, err := svc.Board()
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if len(board.Columns) != 3 {
		t.Errorf("column count = %d, want 3", len(board.Columns))
	}
	if len(board.Cards) != 3 {
		t.Errorf("card count = %d, want 3", len(board.Cards))
	}
}
