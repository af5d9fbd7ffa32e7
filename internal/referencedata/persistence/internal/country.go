package internal

import (
	"time"

	"settings-server/internal/referencedata/domain"
)

type Country struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CountryCode string     `json:"country_code" gorm:"size:2;not null;index"`
	CountryName string     `json:"country_name" gorm:"size:100;not null"`
	IsActive    bool       `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
}

func (Country) TableName() string {
	return "countries"
}

func (c Country) ToDomain() domain.Country {
	return domain.Country{
		ID:          c.ID,
		CountryCode: c.CountryCode,
		CountryName: c.CountryName,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		ModifiedAt:  c.ModifiedAt,
	}
}

func FromCountry(country domain.Country) Country {
	return Country{
		ID:          country.ID,
		CountryCode: country.CountryCode,
		CountryName: country.CountryName,
		IsActive:    country.IsActive,
		CreatedAt:   country.CreatedAt,
		ModifiedAt:  country.ModifiedAt,
	}
}
