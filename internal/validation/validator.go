// Package validation provides custom validators for the application
package validation

import (
	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Initialize registers all custom validators on gin's binding engine
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) {
	if err := v.RegisterValidation("countrykey", validateCountryKey); err != nil {
		panic(err)
	}
}

// validateCountryKey accepts an alpha-2, alpha-3 or numeric code from the country table
func validateCountryKey(fl validator.FieldLevel) bool {
	_, ok := domain.FindCountry(fl.Field().String())
	return ok
}
