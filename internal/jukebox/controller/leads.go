package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/gartstein/jukebox/internal/jukebox/events"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"go.uber.org/zap"
)

// CreateLead stores a contact form submission. The lead always starts
// with status new.
func (s *SiteService) CreateLead(ctx context.Context, in *models.CreateLeadInput) (*models.Lead, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	lead := &models.Lead{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		LeadType:  in.LeadType,
		Status:    models.LeadStatusNew,
	}
	if err := s.repo.CreateLead(ctx, lead); err != nil {
		s.storageFailure("create_lead", err)
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.producer.Produce(events.LeadCreated, strconv.FormatUint(uint64(lead.ID), 10), lead)
	return lead, nil
}

// ListLeads returns every lead, most recently created first.
func (s *SiteService) ListLeads(ctx context.Context) ([]models.Lead, error) {
	leads, err := s.repo.ListLeads(ctx)
	if err != nil {
		s.storageFailure("list_leads", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead to in.Status and returns the updated
// record. An unknown id yields e.ErrNotFound.
func (s *SiteService) UpdateLeadStatus(ctx context.Context, in *models.UpdateLeadStatusInput) (*models.Lead, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	lead, err := s.repo.UpdateLeadStatus(ctx, in.ID, in.Status)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		s.storageFailure("update_lead_status", err)
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	s.logger.Info("Lead status updated",
		zap.Uint("lead_id", lead.ID),
		zap.String("status", string(lead.Status)),
	)
	s.producer.Produce(events.LeadStatusUpdated, strconv.FormatUint(uint64(lead.ID), 10), lead)
	return lead, nil
}
