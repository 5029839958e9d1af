package db

import (
	rows "github.com/gartstein/jukebox/internal/jukebox/db/models"
	"github.com/gartstein/jukebox/internal/jukebox/models"
)

func leadToRow(l *models.Lead) *rows.Lead {
	return &rows.Lead{
		ID:        l.ID,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		Message:   l.Message,
		LeadType:  string(l.LeadType),
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func rowToLead(r *rows.Lead) models.Lead {
	return models.Lead{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Message:   r.Message,
		LeadType:  models.LeadType(r.LeadType),
		Status:    models.LeadStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func locationToRow(l *models.Location) *rows.Location {
	return &rows.Location{
		ID:           l.ID,
		Name:         l.Name,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		ZipCode:      l.ZipCode,
		Phone:        l.Phone,
		Email:        l.Email,
		Website:      l.Website,
		BusinessType: l.BusinessType,
		IsActive:     l.IsActive,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func rowToLocation(r *rows.Location) models.Location {
	return models.Location{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Phone:        r.Phone,
		Email:        r.Email,
		Website:      r.Website,
		BusinessType: r.BusinessType,
		IsActive:     r.IsActive,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func featureToRow(f *models.ProductFeature) *rows.ProductFeature {
	return &rows.ProductFeature{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Icon:        f.Icon,
		OrderIndex:  f.OrderIndex,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func rowToFeature(r *rows.ProductFeature) models.ProductFeature {
	return models.ProductFeature{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		OrderIndex:  r.OrderIndex,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func solutionToRow(s *models.BusinessSolution) *rows.BusinessSolution {
	return &rows.BusinessSolution{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		Benefits:       s.Benefits,
		TargetAudience: s.TargetAudience,
		PricingInfo:    s.PricingInfo,
		IsFeatured:     s.IsFeatured,
		OrderIndex:     s.OrderIndex,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func rowToSolution(r *rows.BusinessSolution) models.BusinessSolution {
	return models.BusinessSolution{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Benefits:       r.Benefits,
		TargetAudience: r.TargetAudience,
		PricingInfo:    r.PricingInfo,
		IsFeatured:     r.IsFeatured,
		OrderIndex:     r.OrderIndex,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func pageToRow(p *models.ContentPage) *rows.ContentPage {
	return &rows.ContentPage{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func rowToPage(r *rows.ContentPage) models.ContentPage {
	return models.ContentPage{
		ID:              r.ID,
		Slug:            r.Slug,
		Title:           r.Title,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsPublished:     r.IsPublished,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
