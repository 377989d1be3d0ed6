package listing

import "time"

// Coordinates is nil on a Listing when the office has not geocoded it yet.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Listing struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	City            string       `json:"city"`
	District        string       `json:"district"`
	Category        string       `json:"category"`         // konut | arsa | isyeri | ...
	TransactionType string       `json:"transaction_type"` // sale | rent
	Price           float64      `json:"price"`
	Currency        string       `json:"currency"`
	Coordinates     *Coordinates `json:"coordinates"`
	Images          []string     `json:"images"`
	Source          string       `json:"source"` // office | imported portal name
	Status          string       `json:"status"` // active | passive | sold
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ListFilter narrows public/admin listing queries.
type ListFilter struct {
	City            string
	Category        string
	TransactionType string
	Status          string
	Limit           int
}
