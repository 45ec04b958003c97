package handler

import "time"

type createEntryRequest struct {
	Title   string `json:"title"   validate:"max=200"`
	Content string `json:"content" validate:"required"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type entryListResponse struct {
	Entries []entryResponse `json:"entries"`
	Count   int             `json:"count"`
}
