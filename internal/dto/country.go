package dto

import (
	"github.com/SscSPs/currency_bar/internal/core/domain"
)

// ListCountriesParams defines query parameters for the country lookup.
type ListCountriesParams struct {
	Name     string `form:"name"`
	Currency string `form:"currency" binding:"omitempty,len=3"`
	Calling  string `form:"calling" binding:"omitempty,max=8"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	Name           string `json:"name"`
	Alpha2         string `json:"alpha2"`
	Alpha3         string `json:"alpha3"`
	Numeric        string `json:"numeric"`
	Calling        string `json:"calling"`
	Continent      string `json:"continent"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
	Locale         string `json:"locale"`
	Flag           string `json:"flag"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c domain.Country) CountryResponse {
	locale := c.Locale()
	return CountryResponse{
		Name:           c.Name,
		Alpha2:         c.Alpha2,
		Alpha3:         c.Alpha3,
		Numeric:        c.Numeric,
		Calling:        c.Calling,
		Continent:      c.Continent,
		Currency:       c.Currency,
		CurrencySymbol: domain.Currency{Code: c.Currency}.Symbol(locale),
		Locale:         locale.String(),
		Flag:           c.Flag(),
	}
}

// ToListCountryResponse converts a slice of domain.Country to a slice of CountryResponse DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i, c := range countries {
		res[i] = ToCountryResponse(c)
	}
	return res
}
