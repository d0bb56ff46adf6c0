package menu

import "github.com/shopspring/decimal"

// Item is a menu entry. Items are never physically deleted; taking one
// off the menu clears the Available flag.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}
