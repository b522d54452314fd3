package dto

import "github.com/SscSPs/currency_bar/internal/core/domain"

// RefreshResponse reports the outcome of a manual refresh.
type RefreshResponse struct {
	Connected bool                 `json:"connected"`
	Report    domain.RefreshReport `json:"report"`
}
