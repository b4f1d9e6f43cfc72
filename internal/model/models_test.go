package model

import "testing"

func sampleBoard() Board {
	return Board{
		Columns: []Column{
			{ID: "column-a", Title: "A", Color: "#6366f1"},
			{ID: "column-b", Title: "B", Color: "#10b981"},
		},
		Cards: []Card{
			{ID: "card-1", ColumnID: "column-a", Title: "one", Tags: []string{"x"}},
			{ID: "card-2", ColumnID: "column-b", Title: "two", Tags: []string{}},
			{ID: "card-3", ColumnID: "column-a", Title: "three", Tags: []string{}},
		},
		Users: []User{{ID: "user1", Name: "Alice"}},
	}
}

func TestCard_Clone(t *testing.T) {
	orig := Card{
		ID:            "card-1",
		Tags:          []string{"a"},
		AssignedUsers: []string{"user1"},
		Comments:      []Comment{{ID: "comment-1", Text: "hi"}},
		Attachments:   []Attachment{{ID: "attachment-1"}},
		VideoLinks:    []VideoLink{{ID: "video-1"}},
	}

	clone := orig.Clone()
	clone.Tags[0] = "b"
	clone.AssignedUsers[0] = "user2"
	clone.Comments[0].Text = "bye"

	if orig.Tags[0] != "a" {
		t.Errorf("clone shares Tags with original")
	}
	if orig.AssignedUsers[0] != "user1" {
		t.Errorf("clone shares AssignedUsers with original")
	}
	if orig.Comments[0].Text != "hi" {
		t.Errorf("clone shares Comments with original")
	}
}

func TestBoard_Clone(t *testing.T) {
	orig := sampleBoard()
	clone := orig.Clone()

	clone.Columns[0].Title = "mutated"
	clone.Cards[0].Tags[0] = "mutated"

	if orig.Columns[0].Title != "A" {
		t.Errorf("clone shares Columns with original")
	}
	if orig.Cards[0].Tags[0] != "x" {
		t.Errorf("clone shares card sub-collections with original")
	}
}

func TestBoard_Find(t *testing.T) {
	b := sampleBoard()

	if got := b.FindColumn("column-b"); got != 1 {
		t.Errorf("FindColumn() = %d, want 1", got)
	}
	if got := b.FindColumn("column-z"); got != -1 {
		t.Errorf("FindColumn() = %d, want -1", got)
	}
	if got := b.FindCard("card-3"); got != 2 {
		t.Errorf("FindCard() = %d, want 2", got)
	}
	if got := b.FindCard("card-z"); got != -1 {
		t.Errorf("FindCard() = %d, want -1", got)
	}
	if got := b.FindUser("user1"); got != 0 {
		t.Errorf("FindUser() = %d, want 0", got)
	}
	if got := b.FindUser("nobody"); got != -1 {
		t.Errorf("FindUser() = %d, want -1", got)
	}
}

func TestBoard_ColumnCards(t *testing.T) {
	b := sampleBoard()

	cards := b.ColumnCards("column-a")
	if len(cards) != 2 {
		t.Fatalf("ColumnCards() count = %d, want 2", len(cards))
	}
	// Relative order follows Board.Cards.
	if cards[0].ID != "card-1" || cards[1].ID != "card-3" {
		t.Errorf("ColumnCards() order = [%s %s], want [card-1 card-3]", cards[0].ID, cards[1].ID)
	}

	if got := b.ColumnCards("column-z"); len(got) != 0 {
		t.Errorf("ColumnCards() for unknown column = %v, want none", got)
	}
}
