package db

import (
	"context"

	rows "github.com/gartstein/jukebox/internal/jukebox/db/models"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"gorm.io/gorm/clause"
)

// predicate is a single column equality test.
type predicate struct {
	column string
	value  interface{}
}

func (p predicate) expression() clause.Expression {
	return clause.Eq{Column: clause.Column{Name: p.column}, Value: p.value}
}

// locationPredicates starts from the mandatory is_active test and adds
// one equality per non-empty filter.
func locationPredicates(f models.LocationFilter) []predicate {
	preds := []predicate{{column: "is_active", value: true}}

	optional := []predicate{
		{column: "city", value: f.City},
		{column: "state", value: f.State},
		{column: "zip_code", value: f.ZipCode},
		{column: "business_type", value: f.BusinessType},
	}
	for _, p := range optional {
		if p.value != "" {
			preds = append(preds, p)
		}
	}
	return preds
}

// conjunction folds predicates into one AND expression.
func conjunction(preds []predicate) clause.Expression {
	exprs := make([]clause.Expression, 0, len(preds))
	for _, p := range preds {
		exprs = append(exprs, p.expression())
	}
	return clause.And(exprs...)
}

func (r *Repository) CreateLocation(ctx context.Context, location *models.Location) error {
	row := locationToRow(location)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*location = rowToLocation(row)
	return nil
}

// ListLocations returns every location, active or not.
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var found []rows.Location
	if err := r.db.WithContext(ctx).Order("id").Find(&found).Error; err != nil {
		return nil, err
	}
	return toLocations(found), nil
}

// SearchLocations returns active locations matching every filter of f,
// at most f.Limit of them.
func (r *Repository) SearchLocations(ctx context.Context, f models.LocationFilter) ([]models.Location, error) {
	var found []rows.Location
	result := r.db.WithContext(ctx).
		Clauses(clause.Where{Exprs: []clause.Expression{conjunction(locationPredicates(f))}}).
		Order("id").
		Limit(f.Limit).
		Find(&found)
	if result.Error != nil {
		return nil, result.Error
	}
	return toLocations(found), nil
}

func toLocations(found []rows.Location) []models.Location {
	locations := make([]models.Location, 0, len(found))
	for i := range found {
		locations = append(locations, rowToLocation(&found[i]))
	}
	return locations
}
