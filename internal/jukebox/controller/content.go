package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/models"
)

func (s *SiteService) ListProductFeatures(ctx context.Context) ([]models.ProductFeature, error) {
	features, err := s.repo.ListProductFeatures(ctx)
	if err != nil {
		s.storageFailure("list_product_features", err)
		return nil, fmt.Errorf("failed to list product features: %w", err)
	}
	return features, nil
}

func (s *SiteService) ListBusinessSolutions(ctx context.Context) ([]models.BusinessSolution, error) {
	solutions, err := s.repo.ListBusinessSolutions(ctx)
	if err != nil {
		s.storageFailure("list_business_solutions", err)
		return nil, fmt.Errorf("failed to list business solutions: %w", err)
	}
	return solutions, nil
}

// GetContentPage returns the page with exactly this slug, or nil without
// an error when there is none. Unpublished pages are returned too.
func (s *SiteService) GetContentPage(ctx context.Context, slug string) (*models.ContentPage, error) {
	page, err := s.repo.GetContentPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, nil
		}
		s.storageFailure("get_content_page", err)
		return nil, fmt.Errorf("failed to get content page: %w", err)
	}
	return page, nil
}
