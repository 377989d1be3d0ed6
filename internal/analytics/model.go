package analytics

import "time"

// Snapshot holds aggregated market pricing for a city + category pair.
type Snapshot struct {
	ID          int       `json:"id"`
	City        string    `json:"city"`
	Category    string    `json:"category"`
	AvgPrice    float64   `json:"avg_price"`
	MedianPrice float64   `json:"median_price"`
	SampleSize  int       `json:"sample_size"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
