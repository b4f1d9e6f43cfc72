package kanban

import "kb-go/internal/model"

// SeedBoard returns the default board used on first load and whenever the
// persisted document is absent or unreadable. Every call returns a fresh deep
// copy so callers can mutate the result freely.
func SeedBoard() model.Board {
	return model.Board{
		Columns: []model.Column{
			{ID: "column-1", Title: "To Do", Color: "#6366f1"},
			{ID: "column-2", Title: "In Progress", Color: "#8b5cf6"},
			{ID: "column-3", Title: "Done", Color: "#10b981"},
		},
		Cards: []model.Card{
			{
				ID:            "card-1",
				ColumnID:      "column-1",
				Title:         "Research competitors",
				Description:   "Analyze top 5 competitors and create a report",
				Priority:      model.PriorityHigh,
				Tags:          []string{"research", "marketing"},
				AssignedUsers: []string{},
				Comments:      []model.Comment{},
				Attachments:   []model.Attachment{},
				VideoLinks:    []model.VideoLink{},
			},
			{
				ID:            "card-2",
				ColumnID:      "column-1",
				Title:         "Design new landing page",
				Description:   "Create wireframes and mockups for the new homepage",
				Priority:      model.PriorityMedium,
				Tags:          []string{"design", "ui/ux"},
				AssignedUsers: []string{},
				Comments:      []model.Comment{},
				Attachments:   []model.Attachment{},
				VideoLinks:    []model.VideoLink{},
			},
			{
				ID:            "card-3",
				ColumnID:      "column-2",
				Title:         "Implement authentication",
				Description:   "Add login and registration functionality",
				Priority:      model.PriorityHigh,
				Tags:          []string{"development", "security"},
				AssignedUsers: []string{},
				Comments:      []model.Comment{},
				Attachments:   []model.Attachment{},
				VideoLinks:    []model.VideoLink{},
			},
		},
		Users: []model.User{
			{ID: "user1", Name: "Alice"},
			{ID: "user2", Name: "Bob"},
			{ID: "user3", Name: "Charlie"},
		},
	}
}
