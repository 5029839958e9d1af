// Package seed loads the site's marketing content from YAML fixtures.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/gartstein/jukebox/internal/jukebox/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixtures []byte

// Fixtures is the content of one seed file.
type Fixtures struct {
	Features  []Feature  `yaml:"features"`
	Solutions []Solution `yaml:"solutions"`
	Pages     []Page     `yaml:"pages"`
	Locations []Location `yaml:"locations"`
}

// Feature is a product feature. Omitting is_active means active.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	OrderIndex  int    `yaml:"order_index"`
	IsActive    *bool  `yaml:"is_active"`
}

type Solution struct {
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	Benefits       string  `yaml:"benefits"`
	TargetAudience string  `yaml:"target_audience"`
	PricingInfo    *string `yaml:"pricing_info"`
	IsFeatured     bool    `yaml:"is_featured"`
	OrderIndex     int     `yaml:"order_index"`
	IsActive       *bool   `yaml:"is_active"`
}

// Page is a content page. Omitting is_published means published.
type Page struct {
	Slug            string  `yaml:"slug"`
	Title           string  `yaml:"title"`
	Content         string  `yaml:"content"`
	MetaTitle       *string `yaml:"meta_title"`
	MetaDescription *string `yaml:"meta_description"`
	IsPublished     *bool   `yaml:"is_published"`
}

type Location struct {
	Name         string   `yaml:"name"`
	Address      string   `yaml:"address"`
	City         string   `yaml:"city"`
	State        string   `yaml:"state"`
	ZipCode      string   `yaml:"zip_code"`
	Phone        *string  `yaml:"phone"`
	Email        *string  `yaml:"email"`
	Website      *string  `yaml:"website"`
	BusinessType string   `yaml:"business_type"`
	Latitude     *float64 `yaml:"latitude"`
	Longitude    *float64 `yaml:"longitude"`
}

func (l Location) input() *models.CreateLocationInput {
	return &models.CreateLocationInput{
		Name:         l.Name,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		ZipCode:      l.ZipCode,
		Phone:        l.Phone,
		Email:        l.Email,
		Website:      l.Website,
		BusinessType: l.BusinessType,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
	}
}

// Default returns the fixtures shipped with the binary.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates fixtures.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixtures) validate() error {
	for i, feature := range f.Features {
		if feature.Title == "" {
			return fmt.Errorf("feature %d: title is required", i)
		}
	}
	for i, solution := range f.Solutions {
		if solution.Title == "" {
			return fmt.Errorf("solution %d: title is required", i)
		}
	}
	seen := make(map[string]bool, len(f.Pages))
	for i, page := range f.Pages {
		if page.Slug == "" {
			return fmt.Errorf("page %d: slug is required", i)
		}
		if seen[page.Slug] {
			return fmt.Errorf("page %d: duplicate slug %q", i, page.Slug)
		}
		seen[page.Slug] = true
	}
	for i, location := range f.Locations {
		if err := location.input().Validate(); err != nil {
			return fmt.Errorf("location %d (%s): %w", i, location.Name, err)
		}
	}
	return nil
}

func orTrue(b *bool) bool {
	return b == nil || *b
}
