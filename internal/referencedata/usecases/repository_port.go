package usecases

import (
	"context"
	"errors"

	"settings-server/internal/referencedata/domain"
)

var (
	ErrCountryNotFound       = errors.New("country not found")
	ErrCountryDuplicated     = errors.New("country code or name already exists")
	ErrGeneralCodeNotFound   = errors.New("general code not found")
	ErrGeneralCodeDuplicated = errors.New("general code already exists for type, number and language")
)

type Pagination struct {
	Limit  int
	Offset int
}

// GeneralCodeFilter narrows listings; zero fields mean "any".
type GeneralCodeFilter struct {
	CodeType     *int
	LanguageCode string
}

type CountryRepository interface {
	Create(ctx context.Context, country domain.Country) (domain.Country, error)
	Update(ctx context.Context, country domain.Country) error
	GetByID(ctx context.Context, id int64) (domain.Country, error)
	FindAll(ctx context.Context, pagination Pagination) ([]domain.Country, int, error)
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type GeneralCodeRepository interface {
	Create(ctx context.Context, code domain.GeneralCode) (domain.GeneralCode, error)
	Update(ctx context.Context, code domain.GeneralCode) error
	GetByID(ctx context.Context, id int64) (domain.GeneralCode, error)
	GetByNaturalKey(ctx context.Context, codeType, codeNumber int, languageCode string) (domain.GeneralCode, error)
	FindAll(ctx context.Context, filter GeneralCodeFilter, pagination Pagination) ([]domain.GeneralCode, int, error)
	Exists(ctx context.Context, codeType, codeNumber int, languageCode string, excludeID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
