package model

import "time"

// Prompt represents a journal entry owned by a user.
// ID and CreatedAt are assigned by the store at insert time.
type Prompt struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Tags      []string    `json:"tags"`
	UserID    int64       `json:"userId"`
	CreatedAt time.Time   `json:"createdAt"`
	User      *PublicUser `json:"user,omitempty"`
}
