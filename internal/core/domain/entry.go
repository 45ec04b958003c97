package domain

import "time"

// Entry is a single diary entry. Every entry belongs to exactly one user;
// all reads and deletes are scoped by OwnerID.
type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
