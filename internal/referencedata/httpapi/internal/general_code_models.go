package internal

import (
	"time"

	"settings-server/internal/referencedata/domain"
)

// Request models
type GeneralCodeSaveRequest struct {
	ID               int64      `json:"id"`
	CodeType         int        `json:"code_type" validate:"required"`
	CodeNumber       int        `json:"code_number" validate:"required"`
	LanguageCode     string     `json:"language_code" validate:"required,min=2,max=5"`
	ShortDescription string     `json:"short_description" validate:"max=200"`
	LongDescription  string     `json:"long_description" validate:"max=1000"`
	IsActive         bool       `json:"is_active"`
	OpeningRegDate   time.Time  `json:"opening_reg_date"`
	ClosingRegDate   *time.Time `json:"closing_reg_date,omitempty"`
}

func (r GeneralCodeSaveRequest) ToDomain() domain.GeneralCode {
	return domain.GeneralCode{
		ID:               r.ID,
		CodeType:         r.CodeType,
		CodeNumber:       r.CodeNumber,
		LanguageCode:     r.LanguageCode,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		IsActive:         r.IsActive,
		OpeningRegDate:   r.OpeningRegDate,
		ClosingRegDate:   r.ClosingRegDate,
	}
}

// Response models
type GeneralCodeResponse struct {
	ID               int64      `json:"id"`
	CodeType         int        `json:"code_type"`
	CodeNumber       int        `json:"code_number"`
	LanguageCode     string     `json:"language_code"`
	ShortDescription string     `json:"short_description"`
	LongDescription  string     `json:"long_description"`
	IsActive         bool       `json:"is_active"`
	OpeningRegDate   time.Time  `json:"opening_reg_date"`
	ClosingRegDate   *time.Time `json:"closing_reg_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ModifiedAt       *time.Time `json:"modified_at,omitempty"`
}

// Conversion functions
func ToGeneralCodeResponse(code domain.GeneralCode) GeneralCodeResponse {
	return GeneralCodeResponse{
		ID:               code.ID,
		CodeType:         code.CodeType,
		CodeNumber:       code.CodeNumber,
		LanguageCode:     code.LanguageCode,
		ShortDescription: code.ShortDescription,
		LongDescription:  code.LongDescription,
		IsActive:         code.IsActive,
		OpeningRegDate:   code.OpeningRegDate,
		ClosingRegDate:   code.ClosingRegDate,
		CreatedAt:        code.CreatedAt,
		ModifiedAt:       code.ModifiedAt,
	}
}
