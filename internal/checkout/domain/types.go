package domain

type SummaryLine struct {
	ItemID   uint64
	Name     string
	Quantity int
}

// Summary is the cart as presented right before an order is placed.
type Summary struct {
	Lines      []SummaryLine
	TotalItems int
}

// Result describes a successfully placed order.
type Result struct {
	OrderID uint64
	Summary Summary
}
