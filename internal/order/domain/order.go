package domain

import (
	"time"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
)

// Order is one placed order as listed in the caller's history.
type Order struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	User      OrderUser `json:"user"`
	Cart      OrderCart `json:"cart"`
}

type OrderUser struct {
	Username string `json:"username"`
}

// OrderCart is the cart an order consumed.
type OrderCart struct {
	Lines []cartdomain.Line `json:"items"`
}

// TotalQuantity is the number of units across every line of the order.
func (o Order) TotalQuantity() int {
	return cartdomain.Snapshot{Lines: o.Cart.Lines}.TotalQuantity()
}

// Receipt is the backend's acknowledgement of a newly created order.
type Receipt struct {
	ID        uint64    `json:"id"`
	CartID    uint64    `json:"cart_id"`
	CreatedAt time.Time `json:"created_at"`
}
