package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"emlakk/internal/listing"
)

// Filename returns a unique name for a dataset dump, e.g.
// listings-20260115-143005-a1b2c3d4.json.zst
func Filename(now time.Time) string {
	return fmt.Sprintf(
		"listings-%s-%s.json.zst",
		now.Format("20060102-150405"),
		uuid.New().String()[:8],
	)
}

type Service struct {
	repo listing.Repository
}

func NewService(repo listing.Repository) *Service {
	return &Service{repo: repo}
}

// WriteDataset streams every listing matching the filter as
// zstd-compressed JSON.
func (s *Service) WriteDataset(
	ctx context.Context,
	w io.Writer,
	filter listing.ListFilter,
) (int, error) {

	listings, err := s.repo.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return 0, err
	}

	if err := json.NewEncoder(enc).Encode(listings); err != nil {
		enc.Close()
		return 0, err
	}

	if err := enc.Close(); err != nil {
		return 0, err
	}

	return len(listings), nil
}
