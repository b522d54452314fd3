package domain

import "time"

// Timestamps holds the bookkeeping times shared by persisted entities.
type Timestamps struct {
	CreatedAt  time.Time `json:"createdAt"`
	LastUpdate time.Time `json:"lastUpdate"` // Sort key for listings
}
