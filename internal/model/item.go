package model

import (
	"strings"

	"github.com/google/uuid"
)

// Item is a single entry on the packing list.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
	Packed      bool   `json:"packed" yaml:"packed"`
}

// NewID returns a fresh random identifier.
func NewID() string { return uuid.NewString() }

// NewItem builds an unsaved item with a fresh id. The description is trimmed
// but not checked; rejecting empty input is the caller's job.
func NewItem(description string, quantity int, packed bool) Item {
	return Item{
		ID:          NewID(),
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		Packed:      packed,
	}
}
