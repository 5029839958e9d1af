package db

import (
	"context"

	rows "github.com/gartstein/jukebox/internal/jukebox/db/models"
	"github.com/gartstein/jukebox/internal/jukebox/models"
)

// CreateSubscription relies on the unique email index: a second signup
// with the same email fails with e.ErrConflict.
func (r *Repository) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	row := &rows.Subscription{Email: sub.Email}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateCreateError(err)
	}
	sub.ID = row.ID
	sub.CreatedAt = row.CreatedAt
	return nil
}
