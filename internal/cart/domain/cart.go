package domain

// ItemRef identifies the catalog item a cart line refers to.
type ItemRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Line is one entry of a cart. The backend serializes these without JSON
// tags, hence the capitalized member names.
type Line struct {
	Item     ItemRef `json:"Item"`
	Quantity int     `json:"Quantity"`
}

// Snapshot is the authoritative cart as last fetched from the backend.
type Snapshot struct {
	Lines []Line `json:"items"`
}

// TotalQuantity sums quantities across all lines. Non-positive quantities
// are not valid cart lines and are ignored.
func (s Snapshot) TotalQuantity() int {
	total := 0
	for _, ln := range s.Lines {
		if ln.Quantity > 0 {
			total += ln.Quantity
		}
	}
	return total
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
