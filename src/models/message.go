// message.go - Defines the Message struct for board posts fetched from the remote API.
// Messages are immutable once decoded; the list is replaced wholesale on every fetch.

package models

import "time"

// Message represents a single board post as returned by the remote API.
type Message struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string
	Text      string
}
