package kanban

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"kb-go/internal/model"
)

// AddCard creates a card with default content in the given column and returns
// it so the caller can immediately open it for editing. An unknown column ID
// is logged and treated as a no-op, keeping every card's ColumnID pointing at
// a live column.
func (s *Service) AddCard(columnID string) (*model.Card, error) {
	board, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}

	if board.FindColumn(columnID) < 0 {
		s.logger.Warn("column not found", "op", "AddCard", "column", columnID)
		return nil, nil
	}

	card := model.Card{
		ID:            "card-" + s.idgen.New(),
		ColumnID:      columnID,
		Title:         "New Card",
		Description:   "Add description here",
		Priority:      model.PriorityMedium,
		Tags:          []string{},
		AssignedUsers: []string{},
		Comments:      []model.Comment{},
		Attachments:   []model.Attachment{},
		VideoLinks:    []model.VideoLink{},
	}

	next := *board
	next.Cards = append(append([]model.Card(nil), board.Cards...), card)
	if err := s.store.Save(&next); err != nil {
		return nil, fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("card added", "card", card.ID, "column", columnID)
	s.toast("Card added", "New card has been added. You can edit it now.")
	return &card, nil
}

// SaveCard replaces the card with the same ID wholesale — a full overwrite,
// not a field merge.
func (s *Service) SaveCard(card model.Card) error {
	if strings.TrimSpace(card.Title) == "" {
		return s.reject("Card title cannot be empty")
	}

	saved, err := s.updateCard(card.ID, "SaveCard", func(_ *model.Board, c *model.Card) error {
		*c = card.Clone()
		return nil
	})
	if err != nil || saved == nil {
		return err
	}

	s.logger.Info("card updated", "card", card.ID)
	s.toast("Card updated", "Card has been updated successfully")
	return nil
}

// DeleteCard removes the card with the given ID.
func (s *Service) DeleteCard(cardID string) error {
	board, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	i := board.FindCard(cardID)
	if i < 0 {
		s.logger.Warn("card not found", "op", "DeleteCard", "card", cardID)
		return nil
	}

	next := *board
	next.Cards = append([]model.Card(nil), board.Cards...)
	next.Cards = slices.Delete(next.Cards, i, i+1)
	if err := s.store.Save(&next); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	s.logger.Info("card deleted", "card", cardID)
	s.toastDestructive("Card deleted", "Card has been deleted")
	return nil
}

// AddTag adds a tag to the card. Tags are lowercased before the uniqueness
// check, so adding the same tag in different cases is idempotent. Tag updates
// are silent: no notification is emitted.
func (s *Service) AddTag(cardID, tag string) error {
	tag = strings.ToLower(tag)
	card, err := s.updateCard(cardID, "AddTag", func(_ *model.Board, c *model.Card) error {
		if !slices.Contains(c.Tags, tag) {
			c.Tags = append(c.Tags, tag)
		}
		return nil
	})
	if err != nil || card == nil {
		return err
	}
	s.logger.Debug("tag added", "card", cardID, "tag", tag)
	return nil
}

// RemoveTag removes a tag from the card. Removing an absent tag is a no-op.
// Like AddTag, this is silent.
func (s *Service) RemoveTag(cardID, tag string) error {
	card, err := s.updateCard(cardID, "RemoveTag", func(_ *model.Board, c *model.Card) error {
		c.Tags = slices.DeleteFunc(c.Tags, func(t string) bool { return t == tag })
		return nil
	})
	if err != nil || card == nil {
		return err
	}
	s.logger.Debug("tag removed", "card", cardID, "tag", tag)
	return nil
}

// AddComment appends a comment to the card. Comments are append-only and
// their insertion order is their chronological order. The author is supplied
// by the caller — the service does not authenticate.
func (s *Service) AddComment(cardID, text, author string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, s.reject("Comment cannot be empty.")
	}
	if strings.TrimSpace(author) == "" {
		return nil, s.reject("Comment author is required.")
	}

	comment := model.Comment{
		ID:        "comment-" + s.idgen.New(),
		Text:      text,
		Author:    author,
		Timestamp: s.clock.Now().UTC().Format(time.RFC3339),
	}

	card, err := s.updateCard(cardID, "AddComment", func(_ *model.Board, c *model.Card) error {
		c.Comments = append(c.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	s.logger.Info("comment added", "card", cardID, "comment", comment.ID)
	s.toast("Comment added", "Your comment has been posted.")
	return &comment, nil
}

// AssignUser adds the user ID to the card's assignees if not already present.
// The ID is not checked against the board's user list; an unknown ID is only
// logged.
func (s *Service) AssignUser(cardID, userID string) error {
	card, err := s.updateCard(cardID, "AssignUser", func(b *model.Board, c *model.Card) error {
		if b.FindUser(userID) < 0 {
			s.logger.Debug("assigning unknown user", "card", cardID, "user", userID)
		}
		if !slices.Contains(c.AssignedUsers, userID) {
			c.AssignedUsers = append(c.AssignedUsers, userID)
		}
		return nil
	})
	if err != nil || card == nil {
		return err
	}

	s.logger.Info("user assigned", "card", cardID, "user", userID)
	s.toast("User Assigned", "User assigned to card.")
	return nil
}

// InviteUser sends a mock invitation. Any email string is accepted and no
// state changes.
func (s *Service) InviteUser(cardID, email string) {
	s.logger.Info("invitation sent", "card", cardID, "email", email)
	s.toast("Invitation Sent (Mock)", fmt.Sprintf("Invitation sent to %s for this card.", email))
}

// AddAttachment adds a named attachment to the card. The URL is a placeholder:
// there is no real upload.
func (s *Service) AddAttachment(cardID, name string) (*model.Attachment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, s.reject("Attachment name cannot be empty.")
	}

	att := model.Attachment{
		ID:   "attachment-" + s.idgen.New(),
		Name: name,
		URL:  "#",
	}

	card, err := s.updateCard(cardID, "AddAttachment", func(_ *model.Board, c *model.Card) error {
		c.Attachments = append(c.Attachments, att)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	s.logger.Info("attachment added", "card", cardID, "attachment", att.ID)
	s.toast("Attachment Added", fmt.Sprintf("Attachment %q added.", name))
	return &att, nil
}

// RemoveAttachment removes an attachment by ID. Removing an absent ID is a
// no-op.
func (s *Service) RemoveAttachment(cardID, attachmentID string) error {
	card, err := s.updateCard(cardID, "RemoveAttachment", func(_ *model.Board, c *model.Card) error {
		c.Attachments = slices.DeleteFunc(c.Attachments, func(a model.Attachment) bool {
			return a.ID == attachmentID
		})
		return nil
	})
	if err != nil || card == nil {
		return err
	}

	s.logger.Info("attachment removed", "card", cardID, "attachment", attachmentID)
	s.toast("Attachment Removed", "Attachment has been removed.")
	return nil
}

// AddVideoLink adds an external video URL to the card. The URL must be a
// well-formed absolute URL. The link is titled "Video N" where N is the
// card's link count plus one at insertion time; titles are never renumbered,
// so they may repeat after deletions — the ID is the identity.
func (s *Service) AddVideoLink(cardID, rawURL string) (*model.VideoLink, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, s.reject("Video URL cannot be empty.")
	}
	if u, err := url.ParseRequestURI(rawURL); err != nil || u.Scheme == "" {
		return nil, s.reject("Invalid video URL.")
	}

	var link model.VideoLink
	card, err := s.updateCard(cardID, "AddVideoLink", func(_ *model.Board, c *model.Card) error {
		link = model.VideoLink{
			ID:    "video-" + s.idgen.New(),
			URL:   rawURL,
			Title: fmt.Sprintf("Video %d", len(c.VideoLinks)+1),
		}
		c.VideoLinks = append(c.VideoLinks, link)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	s.logger.Info("video link added", "card", cardID, "video", link.ID)
	s.toast("Video Link Added", "Video link has been added.")
	return &link, nil
}

// RemoveVideoLink removes a video link by ID.
func (s *Service) RemoveVideoLink(cardID, videoID string) error {
	card, err := s.updateCard(cardID, "RemoveVideoLink", func(_ *model.Board, c *model.Card) error {
		c.VideoLinks = slices.DeleteFunc(c.VideoLinks, func(v model.VideoLink) bool {
			return v.ID == videoID
		})
		return nil
	})
	if err != nil || card == nil {
		return err
	}

	s.logger.Info("video link removed", "card", cardID, "video", videoID)
	s.toast("Video Link Removed", "Video link has been removed.")
	return nil
}
