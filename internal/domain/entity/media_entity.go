package entity

import (
	"time"
)

// Media is a catalog entry. Movies and series share the same shape; the
// episode fields are set only for series and omitted from movie payloads.
type Media struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Trailer     string    `json:"trailer"`
	AddedDate   time.Time `json:"added_date"`
	Rating      float64   `json:"rating"`

	// Series only.
	NumberOfEpisodes *int `json:"numberOfEpisodes,omitempty"`
	Seasons          *int `json:"seasons,omitempty"`
}
