package valuation

import "time"

// --------------------------------------------------
// VALUATION REQUEST (PERSISTED ENTITY)
// --------------------------------------------------

type Request struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           *string    `json:"email,omitempty"`
	City            string     `json:"city"`
	District        *string    `json:"district,omitempty"`
	Category        string     `json:"category"`
	TransactionType string     `json:"transaction_type"` // sale | rent
	AreaM2          *float64   `json:"area_m2,omitempty"`
	Rooms           *string    `json:"rooms,omitempty"`
	ExpectedPrice   *float64   `json:"expected_price,omitempty"`
	Status          string     `json:"status"` // NEW | REVIEWED | CONTACTED
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// --------------------------------------------------
// MARKET ESTIMATE (READ-ONLY)
// --------------------------------------------------

type Estimate struct {
	RequestID    int     `json:"request_id"`
	City         string  `json:"city"`
	Category     string  `json:"category"`
	MarketAvg    float64 `json:"market_avg_price"`
	MarketMedian float64 `json:"market_median_price"`
	SampleSize   int     `json:"sample_size"`
	Positioning  string  `json:"positioning"` // UNDER_MARKET | MARKET_AVERAGE | PREMIUM
}
