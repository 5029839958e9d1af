package models

import "time"

// ProductFeature is one tile of the features section. Lower OrderIndex
// values are displayed first.
type ProductFeature struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessSolution describes an offering for one kind of venue.
type BusinessSolution struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Benefits       string    `json:"benefits"`
	TargetAudience string    `json:"target_audience"`
	PricingInfo    *string   `json:"pricing_info"`
	IsFeatured     bool      `json:"is_featured"`
	OrderIndex     int       `json:"order_index"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ContentPage is a free-form page addressed by its slug.
type ContentPage struct {
	ID              uint      `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
