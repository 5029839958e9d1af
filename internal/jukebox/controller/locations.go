package controller

import (
	"context"
	"fmt"
	"strconv"

	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/events"
	"github.com/gartstein/jukebox/internal/jukebox/models"
)

// CreateLocation registers an active location.
func (s *SiteService) CreateLocation(ctx context.Context, in *models.CreateLocationInput) (*models.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

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
	if err := s.repo.CreateLocation(ctx, location); err != nil {
		s.storageFailure("create_location", err)
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.producer.Produce(events.LocationCreated, strconv.FormatUint(uint64(location.ID), 10), location)
	return location, nil
}

// ListLocations returns every location, including inactive ones.
func (s *SiteService) ListLocations(ctx context.Context) ([]models.Location, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		s.storageFailure("list_locations", err)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// SearchLocations returns active locations matching every given filter.
func (s *SiteService) SearchLocations(ctx context.Context, in *models.SearchLocationsInput) ([]models.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	locations, err := s.repo.SearchLocations(ctx, in.Filter())
	if err != nil {
		s.storageFailure("search_locations", err)
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return locations, nil
}
