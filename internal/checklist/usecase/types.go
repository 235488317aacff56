package usecase

import (
	"context"

	"adhd-planner/pkg/llmprovider"
)

// Generator is the text-generation backend. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
