package domain

import "time"

const StatusAvailable = "available"

// Product is one catalog entry as served by the backend's /items endpoints.
type Product struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
