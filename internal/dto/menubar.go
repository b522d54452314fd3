package dto

import (
	"github.com/SscSPs/currency_bar/internal/core/domain"
	"golang.org/x/text/language"
)

// MenubarItem is one compact entry of the menu bar view.
type MenubarItem struct {
	ID              string `json:"id"`
	Pair            string `json:"pair"` // e.g. "USD/EUR"
	FormattedAmount string `json:"formattedAmount"`
	TrendIndicator  string `json:"trendIndicator"`
	TrendColor      string `json:"trendColor"`
}

// MenubarResponse is everything the menu bar needs to render.
type MenubarResponse struct {
	Connected bool          `json:"connected"`
	Items     []MenubarItem `json:"items"`
}

// ToMenubarResponse builds the menu bar view from menubar-flagged assets.
func ToMenubarResponse(assets []domain.Asset, connected bool, locale language.Tag) MenubarResponse {
	items := make([]MenubarItem, 0, len(assets))
	for _, a := range assets {
		items = append(items, MenubarItem{
			ID:              a.ID,
			Pair:            a.OriginCurrencyCode + "/" + a.TargetCurrencyCode,
			FormattedAmount: FormatMoney(a.TargetAmount.In(domain.Currency{Code: a.TargetCurrencyCode}), locale),
			TrendIndicator:  a.Trend.Indicator(),
			TrendColor:      a.Trend.Color(),
		})
	}
	return MenubarResponse{Connected: connected, Items: items}
}
