package appointment

import "time"

type Appointment struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	ListingID   *string   `json:"listing_id,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
	Note        *string   `json:"note,omitempty"`
	Status      string    `json:"status"` // PENDING | CONFIRMED | CANCELLED
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
