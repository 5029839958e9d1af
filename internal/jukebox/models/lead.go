// Package models defines the domain models served by the jukebox site API
// together with the input types accepted by its procedures. Input types
// validate themselves before anything reaches storage.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// LeadType tells which form a lead came from.
type LeadType string

const (
	LeadTypeGeneral  LeadType = "general"
	LeadTypeBusiness LeadType = "business"
	LeadTypeLocation LeadType = "location"
)

// LeadStatus is the sales pipeline stage of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusClosed    LeadStatus = "closed"
)

var (
	leadTypes    = []interface{}{LeadTypeGeneral, LeadTypeBusiness, LeadTypeLocation}
	leadStatuses = []interface{}{
		LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusClosed,
	}
)

// Lead is a contact form submission.
type Lead struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Company   *string    `json:"company"`
	Message   string     `json:"message"`
	LeadType  LeadType   `json:"lead_type"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateLeadInput carries the contact form fields. There is no status:
// every new lead starts as LeadStatusNew.
type CreateLeadInput struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone"`
	Company   *string  `json:"company"`
	Message   string   `json:"message"`
	LeadType  LeadType `json:"lead_type"`
}

func (in CreateLeadInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validation.Required.Error("first name is required")),
		validation.Field(&in.LastName, validation.Required.Error("last name is required")),
		validation.Field(&in.Email,
			validation.Required.Error("valid email is required"),
			is.EmailFormat.Error("valid email is required"),
		),
		validation.Field(&in.Message, validation.Required.Error("message is required")),
		validation.Field(&in.LeadType,
			validation.Required,
			validation.In(leadTypes...).Error("must be one of general, business, location"),
		),
	)
}

// UpdateLeadStatusInput moves a lead to another pipeline stage. Any stage
// may follow any other.
type UpdateLeadStatusInput struct {
	ID     uint       `json:"id"`
	Status LeadStatus `json:"status"`
}

func (in UpdateLeadStatusInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Status,
			validation.Required,
			validation.In(leadStatuses...).Error("must be one of new, contacted, qualified, converted, closed"),
		),
	)
}
