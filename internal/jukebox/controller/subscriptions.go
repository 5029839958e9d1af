package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/events"
	"github.com/gartstein/jukebox/internal/jukebox/models"
)

// CreateSubscription signs an email up for the newsletter. A repeated
// email fails with e.ErrConflict from storage.
func (s *SiteService) CreateSubscription(ctx context.Context, in *models.CreateSubscriptionInput) (*models.Subscription, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	sub := &models.Subscription{Email: in.Email}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, e.ErrConflict) {
			return nil, fmt.Errorf("%w: email already subscribed", err)
		}
		s.storageFailure("create_subscription", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.producer.Produce(events.SubscriptionCreated, strconv.FormatUint(uint64(sub.ID), 10), sub)
	return sub, nil
}
