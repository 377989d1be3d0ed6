package analytics

import (
	"context"
	"log"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Service struct {
	db   *pgxpool.Pool
	repo *Repository
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{
		db:   db,
		repo: NewRepository(db),
	}
}

// Recompute snapshot for a city + category
func (s *Service) RecomputeSnapshot(
	ctx context.Context,
	city string,
	category string,
) error {

	rows, err := s.db.Query(ctx, `
		SELECT price
		FROM listings
		WHERE status = 'active'
		  AND transaction_type = 'sale'
		  AND city = $1
		  AND category = $2
		  AND price > 0
	`, city, category)
	if err != nil {
		return err
	}
	defer rows.Close()

	var values []float64

	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err == nil {
			values = append(values, v)
		}
	}

	// Require minimum samples
	if len(values) < 3 {
		log.Printf(
			"[MARKET] Skipping %s / %s (samples=%d)",
			city, category, len(values),
		)
		return nil
	}

	avg, median := Summarize(values)

	log.Printf(
		"[MARKET] %s / %s → avg=%.2f median=%.2f samples=%d",
		city, category, avg, median, len(values),
	)

	return s.repo.UpsertSnapshot(ctx, Snapshot{
		City:        city,
		Category:    category,
		AvgPrice:    avg,
		MedianPrice: median,
		SampleSize:  len(values),
	})
}

// RecomputeAll refreshes snapshots for every (city, category) pair
// present in active listings. Called on the cron schedule.
func (s *Service) RecomputeAll(ctx context.Context) error {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT city, category
		FROM listings
		WHERE status = 'active'
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type pair struct{ city, category string }
	var pairs []pair

	for rows.Next() {
		var p pair
		if err := rows.Scan(&p.city, &p.category); err != nil {
			continue
		}
		pairs = append(pairs, p)
	}

	for _, p := range pairs {
		if err := s.RecomputeSnapshot(ctx, p.city, p.category); err != nil {
			log.Printf("[MARKET] Recompute failed for %s / %s: %v", p.city, p.category, err)
		}
	}

	return nil
}

// Read-only fetch for API
func (s *Service) GetSnapshot(
	ctx context.Context,
	city string,
	category string,
) (*Snapshot, error) {
	return s.repo.GetSnapshot(ctx, city, category)
}

// Summarize computes the mean and median of a price sample.
func Summarize(values []float64) (avg, median float64) {
	if len(values) == 0 {
		return 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return sum / float64(len(sorted)), sorted[len(sorted)/2]
}
