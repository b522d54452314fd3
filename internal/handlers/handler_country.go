package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/SscSPs/currency_bar/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerCountryRoutes registers the read-only country reference routes.
func registerCountryRoutes(rg *gin.RouterGroup) {
	countries := rg.Group("/countries")
	{
		countries.GET("", listCountries)
		countries.GET("/:key", getCountry)
	}
}

// listCountries godoc
// @Summary List or search countries
// @Description Without filters lists every country. name searches by name, currency filters by ISO code, calling by dialling prefix.
// @Tags countries
// @Produce  json
// @Param   name query string false "Country name, exact or a unique partial match of 4+ characters"
// @Param   currency query string false "ISO 4217 code"
// @Param   calling query string false "International dialling prefix, e.g. 44 or +44"
// @Success 200 {array} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "No country matches"
// @Router /countries [get]
func listCountries(c *gin.Context) {
	logger := requestLogger(c)
	var params dto.ListCountriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCountries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var countries []domain.Country
	switch {
	case params.Name != "":
		country, ok := domain.SearchCountryByName(params.Name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No country matches '" + params.Name + "'"})
			return
		}
		countries = []domain.Country{country}
	case params.Currency != "":
		countries = domain.CountriesByCurrency(params.Currency)
	case params.Calling != "":
		countries = domain.SearchCountryByCallingCode(params.Calling)
	default:
		countries = domain.Countries()
	}

	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// getCountry godoc
// @Summary Get a country
// @Tags countries
// @Produce  json
// @Param   key path string true "Alpha-2, alpha-3 or numeric code"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/{key} [get]
func getCountry(c *gin.Context) {
	country, ok := domain.FindCountry(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}
