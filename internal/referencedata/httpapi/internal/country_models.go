package internal

import (
	"time"

	"settings-server/internal/referencedata/domain"
)

// Request models
type CountrySaveRequest struct {
	ID          int64  `json:"id"`
	CountryCode string `json:"country_code" validate:"required,len=2"`
	CountryName string `json:"country_name" validate:"required,min=1,max=100"`
	IsActive    bool   `json:"is_active"`
}

func (r CountrySaveRequest) ToDomain() domain.Country {
	return domain.Country{
		ID:          r.ID,
		CountryCode: r.CountryCode,
		CountryName: r.CountryName,
		IsActive:    r.IsActive,
	}
}

// Response models
type CountryResponse struct {
	ID          int64      `json:"id"`
	CountryCode string     `json:"country_code"`
	CountryName string     `json:"country_name"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
}

// Conversion functions
func ToCountryResponse(country domain.Country) CountryResponse {
	return CountryResponse{
		ID:          country.ID,
		CountryCode: country.CountryCode,
		CountryName: country.CountryName,
		IsActive:    country.IsActive,
		CreatedAt:   country.CreatedAt,
		ModifiedAt:  country.ModifiedAt,
	}
}
