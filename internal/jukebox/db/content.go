package db

import (
	"context"
	"errors"
	"fmt"

	rows "github.com/gartstein/jukebox/internal/jukebox/db/models"
	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateProductFeature(ctx context.Context, feature *models.ProductFeature) error {
	row := featureToRow(feature)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*feature = rowToFeature(row)
	return nil
}

// ListProductFeatures returns active features by ascending order_index.
func (r *Repository) ListProductFeatures(ctx context.Context) ([]models.ProductFeature, error) {
	var found []rows.ProductFeature
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index ASC").
		Order("id ASC").
		Find(&found)
	if result.Error != nil {
		return nil, result.Error
	}

	features := make([]models.ProductFeature, 0, len(found))
	for i := range found {
		features = append(features, rowToFeature(&found[i]))
	}
	return features, nil
}

func (r *Repository) CreateBusinessSolution(ctx context.Context, solution *models.BusinessSolution) error {
	row := solutionToRow(solution)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*solution = rowToSolution(row)
	return nil
}

// ListBusinessSolutions returns active solutions by ascending order_index.
func (r *Repository) ListBusinessSolutions(ctx context.Context) ([]models.BusinessSolution, error) {
	var found []rows.BusinessSolution
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index ASC").
		Order("id ASC").
		Find(&found)
	if result.Error != nil {
		return nil, result.Error
	}

	solutions := make([]models.BusinessSolution, 0, len(found))
	for i := range found {
		solutions = append(solutions, rowToSolution(&found[i]))
	}
	return solutions, nil
}

// CreateContentPage fails with e.ErrConflict when the slug is taken.
func (r *Repository) CreateContentPage(ctx context.Context, page *models.ContentPage) error {
	row := pageToRow(page)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateCreateError(err)
	}
	*page = rowToPage(row)
	return nil
}

// GetContentPageBySlug matches the slug exactly, published or not.
func (r *Repository) GetContentPageBySlug(ctx context.Context, slug string) (*models.ContentPage, error) {
	var row rows.ContentPage
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: content page %q", e.ErrNotFound, slug)
		}
		return nil, result.Error
	}
	page := rowToPage(&row)
	return &page, nil
}
