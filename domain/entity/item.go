package entity

import (
	"time"
)

// Item is a standard catalog entry referenced by challan line items.
type Item struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Unit      string     `json:"unit"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
