package internal

import (
	"time"

	"settings-server/internal/referencedata/domain"
)

type GeneralCode struct {
	ID               int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CodeType         int        `json:"code_type" gorm:"not null;index:idx_general_codes_key,priority:1"`
	CodeNumber       int        `json:"code_number" gorm:"not null;index:idx_general_codes_key,priority:2"`
	LanguageCode     string     `json:"language_code" gorm:"size:5;not null;index:idx_general_codes_key,priority:3"`
	ShortDescription string     `json:"short_description" gorm:"size:200"`
	LongDescription  string     `json:"long_description" gorm:"size:1000"`
	IsActive         bool       `json:"is_active" gorm:"not null"`
	OpeningRegDate   time.Time  `json:"opening_reg_date"`
	ClosingRegDate   *time.Time `json:"closing_reg_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ModifiedAt       *time.Time `json:"modified_at,omitempty"`
}

func (GeneralCode) TableName() string {
	return "general_codes"
}

func (g GeneralCode) ToDomain() domain.GeneralCode {
	return domain.GeneralCode{
		ID:               g.ID,
		CodeType:         g.CodeType,
		CodeNumber:       g.CodeNumber,
		LanguageCode:     g.LanguageCode,
		ShortDescription: g.ShortDescription,
		LongDescription:  g.LongDescription,
		IsActive:         g.IsActive,
		OpeningRegDate:   g.OpeningRegDate,
		ClosingRegDate:   g.ClosingRegDate,
		CreatedAt:        g.CreatedAt,
		ModifiedAt:       g.ModifiedAt,
	}
}

func FromGeneralCode(code domain.GeneralCode) GeneralCode {
	return GeneralCode{
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
