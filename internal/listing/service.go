package listing

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"emlakk/internal/storage"
)

// ImageUploader is satisfied by storage.R2Client.
type ImageUploader interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo     Repository
	uploader ImageUploader
}

func NewService(repo Repository, uploader ImageUploader) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
	}
}

// --------------------------------------------------
// Create listing
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, l *Listing) (*Listing, error) {
	if l.Title == "" || l.City == "" || l.Category == "" {
		return nil, errors.New("missing required fields")
	}

	if l.TransactionType != "sale" && l.TransactionType != "rent" {
		return nil, errors.New("transaction_type must be sale or rent")
	}

	if l.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	if l.Slug == "" {
		l.Slug = Slugify(l.Title)
	}
	if l.Currency == "" {
		l.Currency = "TRY"
	}
	if l.Source == "" {
		l.Source = "office"
	}
	l.Status = "active"

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// --------------------------------------------------
// Update listing
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, l *Listing) error {
	if l.ID == "" {
		return errors.New("missing listing id")
	}

	if l.TransactionType != "sale" && l.TransactionType != "rent" {
		return errors.New("transaction_type must be sale or rent")
	}

	if l.Price < 0 {
		return errors.New("price cannot be negative")
	}

	return s.repo.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Listing, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Listing, error) {
	return s.repo.List(ctx, filter)
}

// --------------------------------------------------
// Upload listing images to object storage
// --------------------------------------------------
func (s *Service) UploadImages(
	ctx context.Context,
	listingID string,
	files []*multipart.FileHeader,
) error {

	if s.uploader == nil {
		return errors.New("image storage not configured")
	}

	if _, err := s.repo.GetByID(ctx, listingID); err != nil {
		return errors.New("listing not found")
	}

	var urls []string
	for _, fh := range files {
		if err := storage.ValidateImageType(fh); err != nil {
			return err
		}

		f, err := fh.Open()
		if err != nil {
			return err
		}

		key := storage.ListingImageKey(listingID, fh.Filename)
		url, err := s.uploader.Upload(ctx, key, f)
		f.Close()
		if err != nil {
			return err
		}

		urls = append(urls, url)
	}

	return s.repo.SaveImages(ctx, listingID, urls)
}

// Slugify builds a URL-safe slug, transliterating Turkish characters.
func Slugify(title string) string {
	replacer := strings.NewReplacer(
		"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
		"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
	)
	slug := strings.ToLower(replacer.Replace(title))

	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
