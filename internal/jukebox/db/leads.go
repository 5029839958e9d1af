package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	rows "github.com/gartstein/jukebox/internal/jukebox/db/models"
	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"gorm.io/gorm"
)

// CreateLead inserts the lead and fills in its id and timestamps.
func (r *Repository) CreateLead(ctx context.Context, lead *models.Lead) error {
	row := leadToRow(lead)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*lead = rowToLead(row)
	return nil
}

// ListLeads returns every lead, newest first.
func (r *Repository) ListLeads(ctx context.Context) ([]models.Lead, error) {
	var found []rows.Lead
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&found)
	if result.Error != nil {
		return nil, result.Error
	}

	leads := make([]models.Lead, 0, len(found))
	for i := range found {
		leads = append(leads, rowToLead(&found[i]))
	}
	return leads, nil
}

func (r *Repository) GetLead(ctx context.Context, id uint) (*models.Lead, error) {
	var row rows.Lead
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lead with id %d", e.ErrNotFound, id)
		}
		return nil, result.Error
	}
	lead := rowToLead(&row)
	return &lead, nil
}

// UpdateLeadStatus sets the status of a lead and advances its updated_at.
// updated_at is strictly greater than its previous value even when the
// clock has not moved.
func (r *Repository) UpdateLeadStatus(ctx context.Context, id uint, status models.LeadStatus) (*models.Lead, error) {
	var updated *models.Lead
	err := r.WithTransaction(ctx, func(tx *Repository) error {
		lead, err := tx.GetLead(ctx, id)
		if err != nil {
			return err
		}

		now := tx.db.NowFunc()
		if !now.After(lead.UpdatedAt) {
			now = lead.UpdatedAt.Add(time.Microsecond)
		}

		result := tx.db.WithContext(ctx).Model(&rows.Lead{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     string(status),
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: lead with id %d", e.ErrNotFound, id)
		}

		lead.Status = status
		lead.UpdatedAt = now
		updated = lead
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
