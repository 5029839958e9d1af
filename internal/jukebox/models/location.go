package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultSearchLimit caps a location search when the caller gives no limit.
const DefaultSearchLimit = 50

// Location is a venue where a jukebox can be found.
type Location struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Website      *string   `json:"website"`
	BusinessType string    `json:"business_type"`
	IsActive     bool      `json:"is_active"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateLocationInput registers a new venue. Coordinates are independent
// and carry no range check.
type CreateLocationInput struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Website      *string  `json:"website"`
	BusinessType string   `json:"business_type"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func (in CreateLocationInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("location name is required")),
		validation.Field(&in.Address, validation.Required.Error("address is required")),
		validation.Field(&in.City, validation.Required.Error("city is required")),
		validation.Field(&in.State,
			validation.Required.Error("state is required"),
			validation.RuneLength(2, 0).Error("state is required"),
		),
		validation.Field(&in.ZipCode,
			validation.Required.Error("ZIP code is required"),
			validation.RuneLength(5, 0).Error("ZIP code is required"),
		),
		validation.Field(&in.Email, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&in.BusinessType, validation.Required.Error("business type is required")),
	)
}

// SearchLocationsInput filters active locations. Empty filters are ignored
// and every present filter must match exactly.
type SearchLocationsInput struct {
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Limit        *int   `json:"limit,omitempty"`
}

func (in SearchLocationsInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Limit,
			validation.NilOrNotEmpty.Error("must be a positive integer"),
			validation.Min(1).Error("must be a positive integer"),
		),
	)
}

// Filter resolves the input into a LocationFilter, applying DefaultSearchLimit.
func (in SearchLocationsInput) Filter() LocationFilter {
	limit := DefaultSearchLimit
	if in.Limit != nil {
		limit = *in.Limit
	}
	return LocationFilter{
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		BusinessType: in.BusinessType,
		Limit:        limit,
	}
}

// LocationFilter is a validated search with its limit resolved.
type LocationFilter struct {
	City         string
	State        string
	ZipCode      string
	BusinessType string
	Limit        int
}
