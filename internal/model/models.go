package model

// Board is the whole persisted document: every mutation replaces it wholesale
// and writes it back to the store.
type Board struct {
	Columns []Column `json:"columns"`
	Cards   []Card   `json:"cards"`
	Users   []User   `json:"users"`
}

// Column is a named, colored lane. Cards reference it by ID; deleting a column
// cascades to its cards.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"` // display color, e.g. "#6366f1"
}

// Card priorities. Stored as plain strings in the document.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Card is a task unit belonging to exactly one column. Display order within a
// column is the card's position in Board.Cards — there is no separate rank.
type Card struct {
	ID            string       `json:"id"`
	ColumnID      string       `json:"columnId"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Priority      string       `json:"priority"`
	Tags          []string     `json:"tags"`          // lowercased, unique
	AssignedUsers []string     `json:"assignedUsers"` // user IDs, unique
	Comments      []Comment    `json:"comments"`      // append-only, chronological
	Attachments   []Attachment `json:"attachments"`
	VideoLinks    []VideoLink  `json:"videoLinks"`
}

// Comment is immutable once created.
type Comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"` // RFC 3339
}

// Attachment carries a placeholder URL — there is no real upload.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VideoLink is an external video URL with an auto-generated label.
type VideoLink struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// User is read-only reference data seeded with the board.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Clone returns a deep copy of the card. Board updates are copy-on-write: only
// the affected card is cloned, the rest of the document is shared.
func (c Card) Clone() Card {
	out := c
	out.Tags = append([]string(nil), c.Tags...)
	out.AssignedUsers = append([]string(nil), c.AssignedUsers...)
	out.Comments = append([]Comment(nil), c.Comments...)
	out.Attachments = append([]Attachment(nil), c.Attachments...)
	out.VideoLinks = append([]VideoLink(nil), c.VideoLinks...)
	return out
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{
		Columns: append([]Column(nil), b.Columns...),
		Cards:   make([]Card, len(b.Cards)),
		Users:   append([]User(nil), b.Users...),
	}
	for i, c := range b.Cards {
		out.Cards[i] = c.Clone()
	}
	return out
}

// FindColumn returns the index of the column with the given ID, or -1.
func (b Board) FindColumn(id string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCard returns the index of the card with the given ID, or -1.
func (b Board) FindCard(id string) int {
	for i := range b.Cards {
		if b.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUser returns the index of the user with the given ID, or -1.
func (b Board) FindUser(id string) int {
	for i := range b.Users {
		if b.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// ColumnCards returns the cards of one column in their current relative order.
func (b Board) ColumnCards(columnID string) []Card {
	var out []Card
	for _, c := range b.Cards {
		if c.ColumnID == columnID {
			out = append(out, c)
		}
	}
	return out
}
