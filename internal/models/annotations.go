package models

import "time"

// Bookmark marks a verse for a user; at most one per (user, verse)
type Bookmark struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	VerseID   string    `json:"verse_id" db:"verse_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Highlight colours a verse for a user; at most one per (user, verse)
type Highlight struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	VerseID   string    `json:"verse_id" db:"verse_id"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Note is free-form study text attached to a verse
type Note struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	VerseID   string    `json:"verse_id" db:"verse_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AnnotatedVerse pairs a bookmarked or highlighted verse with its text
type AnnotatedVerse struct {
	Verse
	Color    *string   `json:"color,omitempty" db:"color"`
	MarkedAt time.Time `json:"marked_at" db:"marked_at"`
}

// ToggleBookmarkResponse is the response for a bookmark toggle
type ToggleBookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

// SetHighlightRequest sets or clears (nil color) a highlight
type SetHighlightRequest struct {
	Color *string `json:"color"`
}

// AddNoteRequest is the request body for creating a note
type AddNoteRequest struct {
	Content string `json:"content"`
}
