package content

import (
	"encoding/json"
	"time"
)

const (
	KindSocialPost = "SOCIAL_POST"
	KindArticle    = "ARTICLE"
)

const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusGenerated  = "GENERATED"
	StatusFailed     = "FAILED"
)

type GeneratedContent struct {
	ID        int             `json:"id"`
	ListingID string          `json:"listing_id"`
	Kind      string          `json:"kind"`   // SOCIAL_POST | ARTICLE
	Status    string          `json:"status"` // PENDING | PROCESSING | GENERATED | FAILED
	Body      json.RawMessage `json:"body,omitempty"`
	Error     *string         `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
