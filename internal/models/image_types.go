package models

import (
	"time"
)

// Image is the model for the 'images' table (one uploaded outfit item).
// URL is derived from the stored filename and always resolves under the
// public /outfits static mount.
type Image struct {
	ImageID   string    `json:"image_id" db:"image_id"`
	Filename  string    `json:"filename" db:"filename"`
	URL       string    `json:"url" db:"url"`
	Category  string    `json:"category" db:"category"` // cold, rainy, warm, hot
	ItemName  string    `json:"item_name" db:"item_name"`
	Type      string    `json:"type" db:"type"` // clothing, accessory, any
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
