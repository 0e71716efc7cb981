package matching

import (
	"context"
)

type Repository interface {
	FindCategory(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, rawPattern, categoryKey string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category key for the given transaction description.
// Returns empty string if no mapping matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers a new mapping between a raw description pattern and a
// category key, so future imports of the same merchant are pre-categorized.
func (s *Service) Learn(ctx context.Context, rawPattern, categoryKey string) error {
	return s.repo.CreateMapping(ctx, rawPattern, categoryKey)
}
