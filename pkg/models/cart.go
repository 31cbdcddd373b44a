package models

// CartItem is the line-item shape the cart front end posts around. The cart
// itself lives client side; this type only pins down the interface.
type CartItem struct {
	EventID    string  `json:"event_id"`
	Title      string  `json:"title"`
	Price      string  `json:"price"`
	PriceValue float64 `json:"price_value"`
	Quantity   int     `json:"quantity"`
}
