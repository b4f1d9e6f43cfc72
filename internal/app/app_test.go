package app

import (
	"testing"

	"kb-go/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig("profile-test", t.TempDir())
	cfg.Store.Type = "memory"
	return cfg
}

func TestNewKanbanApp(t *testing.T) {
	t.Run("wires a working service", func(t *testing.T) {
		a, err := NewKanbanApp(testConfig(t), "TestOp", nil)
		if err != nil {
			t.Fatalf("NewKanbanApp() error = %v", err)
		}
		defer a.Close()

		card, err := a.Service().AddCard("column-1")
		if err != nil {
			t.Fatalf("AddCard() error = %v", err)
		}
		if card == nil {
			t.Fatal("AddCard() returned nil card")
		}

		board, err := a.Service().Board()
		if err != nil {
			t.Fatalf("Board() error = %v", err)
		}
		if len(board.Cards) != 4 {
			t.Errorf("card count = %d, want 4", len(board.Cards))
		}
	})

	t.Run("encrypted store unlocks with the supplied passphrase", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Encryption.Enabled = true
		cfg.Encryption.Type = "test"

		a, err := NewKanbanApp(cfg, "TestOp", func() (string, error) { return "secret", nil })
		if err != nil {
			t.Fatalf("NewKanbanApp() error = %v", err)
		}
		defer a.Close()

		if _, err := a.Service().Board(); err != nil {
			t.Errorf("Board() error = %v", err)
		}
	})

	t.Run("encrypted store without a passphrase source fails", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Encryption.Enabled = true
		cfg.Encryption.Type = "test"

		if _, err := NewKanbanApp(cfg, "TestOp", nil); err == nil {
			t.Error("NewKanbanApp() error = nil, want error")
		}
	})

	t.Run("encryption enabled but unconfigured keys fail fast", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Encryption.Enabled = true
		// Default type is age; no keys exist under the temp base dir.

		if _, err := NewKanbanApp(cfg, "TestOp", func() (string, error) { return "secret", nil }); err == nil {
			t.Error("NewKanbanApp() error = nil, want error")
		}
	})

	t.Run("CurrentUser reflects the configured display name", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.UserName = "Alice"

		a, err := NewKanbanApp(cfg, "TestOp", nil)
		if err != nil {
			t.Fatalf("NewKanbanApp() error = %v", err)
		}
		defer a.Close()

		if got := a.CurrentUser(); got != "Alice" {
			t.Errorf("CurrentUser() = %q, want %q", got, "Alice")
		}
	})
}
