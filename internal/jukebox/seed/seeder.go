package seed

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"go.uber.org/zap"
)

// Store is the part of the repository the seeder writes through.
type Store interface {
	CreateProductFeature(ctx context.Context, feature *models.ProductFeature) error
	ListProductFeatures(ctx context.Context) ([]models.ProductFeature, error)
	CreateBusinessSolution(ctx context.Context, solution *models.BusinessSolution) error
	ListBusinessSolutions(ctx context.Context) ([]models.BusinessSolution, error)
	CreateContentPage(ctx context.Context, page *models.ContentPage) error
	GetContentPageBySlug(ctx context.Context, slug string) (*models.ContentPage, error)
	CreateLocation(ctx context.Context, location *models.Location) error
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// Result counts what one run inserted and skipped.
type Result struct {
	Features     int
	Solutions    int
	Pages        int
	SkippedPages int
	Locations    int
}

type Seeder struct {
	store  Store
	logger *zap.Logger
}

func NewSeeder(store Store, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, logger: logger.Named("seed")}
}

// Run inserts the fixtures. Features, solutions and locations are only
// inserted into an empty table, and pages whose slug already exists are
// skipped, so running it twice changes nothing.
func (s *Seeder) Run(ctx context.Context, f *Fixtures) (Result, error) {
	var res Result
	var err error

	if res.Features, err = s.seedFeatures(ctx, f.Features); err != nil {
		return res, err
	}
	if res.Solutions, err = s.seedSolutions(ctx, f.Solutions); err != nil {
		return res, err
	}
	if res.Pages, res.SkippedPages, err = s.seedPages(ctx, f.Pages); err != nil {
		return res, err
	}
	if res.Locations, err = s.seedLocations(ctx, f.Locations); err != nil {
		return res, err
	}

	s.logger.Info("Seed completed",
		zap.Int("features", res.Features),
		zap.Int("solutions", res.Solutions),
		zap.Int("pages", res.Pages),
		zap.Int("skipped_pages", res.SkippedPages),
		zap.Int("locations", res.Locations),
	)
	return res, nil
}

func (s *Seeder) seedFeatures(ctx context.Context, features []Feature) (int, error) {
	existing, err := s.store.ListProductFeatures(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list product features: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("Product features already present, skipping", zap.Int("count", len(existing)))
		return 0, nil
	}

	for _, f := range features {
		feature := &models.ProductFeature{
			Title:       f.Title,
			Description: f.Description,
			Icon:        f.Icon,
			OrderIndex:  f.OrderIndex,
			IsActive:    orTrue(f.IsActive),
		}
		if err := s.store.CreateProductFeature(ctx, feature); err != nil {
			return 0, fmt.Errorf("failed to create product feature %q: %w", f.Title, err)
		}
	}
	return len(features), nil
}

func (s *Seeder) seedSolutions(ctx context.Context, solutions []Solution) (int, error) {
	existing, err := s.store.ListBusinessSolutions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list business solutions: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("Business solutions already present, skipping", zap.Int("count", len(existing)))
		return 0, nil
	}

	for _, sol := range solutions {
		solution := &models.BusinessSolution{
			Title:          sol.Title,
			Description:    sol.Description,
			Benefits:       sol.Benefits,
			TargetAudience: sol.TargetAudience,
			PricingInfo:    sol.PricingInfo,
			IsFeatured:     sol.IsFeatured,
			OrderIndex:     sol.OrderIndex,
			IsActive:       orTrue(sol.IsActive),
		}
		if err := s.store.CreateBusinessSolution(ctx, solution); err != nil {
			return 0, fmt.Errorf("failed to create business solution %q: %w", sol.Title, err)
		}
	}
	return len(solutions), nil
}

func (s *Seeder) seedPages(ctx context.Context, pages []Page) (created, skipped int, err error) {
	for _, p := range pages {
		_, err := s.store.GetContentPageBySlug(ctx, p.Slug)
		switch {
		case err == nil:
			s.logger.Info("Content page exists, skipping", zap.String("slug", p.Slug))
			skipped++
			continue
		case !errors.Is(err, e.ErrNotFound):
			return created, skipped, fmt.Errorf("failed to look up content page %q: %w", p.Slug, err)
		}

		page := &models.ContentPage{
			Slug:            p.Slug,
			Title:           p.Title,
			Content:         p.Content,
			MetaTitle:       p.MetaTitle,
			MetaDescription: p.MetaDescription,
			IsPublished:     orTrue(p.IsPublished),
		}
		if err := s.store.CreateContentPage(ctx, page); err != nil {
			return created, skipped, fmt.Errorf("failed to create content page %q: %w", p.Slug, err)
		}
		created++
	}
	return created, skipped, nil
}

func (s *Seeder) seedLocations(ctx context.Context, locations []Location) (int, error) {
	existing, err := s.store.ListLocations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list locations: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("Locations already present, skipping", zap.Int("count", len(existing)))
		return 0, nil
	}

	for _, l := range locations {
		in := l.input()
		location := &models.Location{
			Name:         in.Name,
			Address:      in.Address,
			City:         in.City,
			State:        in.State,
			ZipCode:      in.ZipCode,
			Phone:        in.Phone,
			Email:        in.Email,
			Website:      in.Website,
			BusinessType: in.BusinessType,
			IsActive:     true,
			Latitude:     in.Latitude,
			Longitude:    in.Longitude,
		}
		if err := s.store.CreateLocation(ctx, location); err != nil {
			return 0, fmt.Errorf("failed to create location %q: %w", l.Name, err)
		}
	}
	return len(locations), nil
}
