// Package controller implements the operations behind every site
// procedure: validate the input, make one repository call, and report
// successful writes as domain events.
package controller

import (
	"context"

	"github.com/gartstein/jukebox/internal/jukebox/events"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"go.uber.org/zap"
)

type EventProducer interface {
	Produce(eventType events.EventType, key string, payload interface{})
}

// Repository defines the storage interface for site records.
type Repository interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
	ListLeads(ctx context.Context) ([]models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id uint, status models.LeadStatus) (*models.Lead, error)
	CreateLocation(ctx context.Context, location *models.Location) error
	ListLocations(ctx context.Context) ([]models.Location, error)
	SearchLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error)
	ListProductFeatures(ctx context.Context) ([]models.ProductFeature, error)
	ListBusinessSolutions(ctx context.Context) ([]models.BusinessSolution, error)
	GetContentPageBySlug(ctx context.Context, slug string) (*models.ContentPage, error)
	CreateSubscription(ctx context.Context, sub *models.Subscription) error
}

// SiteService provides the site operations on top of a Repository.
type SiteService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
}

// NewSiteService constructs a SiteService with a repository,
// an event producer, and a logger.
func NewSiteService(repo Repository, producer EventProducer, logger *zap.Logger) *SiteService {
	return &SiteService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("jukebox_service"),
	}
}

// storageFailure logs err before it is handed back to the caller.
func (s *SiteService) storageFailure(op string, err error) {
	s.logger.Error("Storage operation failed", zap.String("operation", op), zap.Error(err))
}
