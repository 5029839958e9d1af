// Package models contains the table rows persisted through GORM. Every
// table is independent: there are no foreign keys between them.
package models

import (
	"time"
)

// Boolean columns carry no GORM default so that an explicit false is
// always written.

type Lead struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     *string
	Company   *string
	Message   string    `gorm:"not null"`
	LeadType  string    `gorm:"size:16;not null"`
	Status    string    `gorm:"size:16;not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (Lead) TableName() string { return "leads" }

type Location struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Address      string `gorm:"not null"`
	City         string `gorm:"not null;index"`
	State        string `gorm:"not null;index"`
	ZipCode      string `gorm:"not null;index"`
	Phone        *string
	Email        *string
	Website      *string
	BusinessType string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	Latitude     *float64  `gorm:"type:double precision"`
	Longitude    *float64  `gorm:"type:double precision"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime"`
}

func (Location) TableName() string { return "locations" }

type ProductFeature struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Icon        string    `gorm:"not null"`
	OrderIndex  int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime"`
}

func (ProductFeature) TableName() string { return "product_features" }

type BusinessSolution struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Title          string `gorm:"not null"`
	Description    string `gorm:"not null"`
	Benefits       string `gorm:"not null"`
	TargetAudience string `gorm:"not null"`
	PricingInfo    *string
	IsFeatured     bool      `gorm:"not null"`
	OrderIndex     int       `gorm:"not null"`
	IsActive       bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime"`
}

func (BusinessSolution) TableName() string { return "business_solutions" }

type ContentPage struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	Slug            string `gorm:"not null;uniqueIndex"`
	Title           string `gorm:"not null"`
	Content         string `gorm:"not null"`
	MetaTitle       *string
	MetaDescription *string
	IsPublished     bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime"`
}

func (ContentPage) TableName() string { return "content_pages" }

type Subscription struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }

// All lists every row type, in migration order.
func All() []interface{} {
	return []interface{}{
		&Lead{}, &Location{}, &ProductFeature{}, &BusinessSolution{}, &ContentPage{}, &Subscription{},
	}
}
