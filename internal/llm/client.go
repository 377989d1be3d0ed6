package llm

import (
	"context"
)

type Client interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
