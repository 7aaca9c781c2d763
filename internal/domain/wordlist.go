package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordList is a named corpus of words imported in one batch.
type WordList struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	WordCount int       `json:"wordCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Word is one entry of a word list. Duplicates are kept: statistics
// count every occurrence.
type Word struct {
	ListID   uuid.UUID `json:"listId"`
	Position int       `json:"position"`
	Text     string    `json:"text"`
}

// StatsSnapshot is a stored result of analyzing one word list.
type StatsSnapshot struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"listId"`
	Stats     *Stats    `json:"stats"`
	CreatedAt time.Time `json:"createdAt"`
}
