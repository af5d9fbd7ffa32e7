package persistence

import (
	"context"
	"errors"
	"fmt"

	"settings-server/internal/infra/sql"
	"settings-server/internal/referencedata/domain"
	"settings-server/internal/referencedata/persistence/internal"
	"settings-server/internal/referencedata/usecases"
)

func NewCountryRepository(orm sql.ORM) (*SimpleCountryRepository, error) {
	err := orm.AutoMigrate(&internal.Country{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCountryRepository{
		orm: orm,
	}, nil
}

var _ usecases.CountryRepository = (*SimpleCountryRepository)(nil)

type SimpleCountryRepository struct {
	orm sql.ORM
}

func (r *SimpleCountryRepository) Create(ctx context.Context, country domain.Country) (domain.Country, error) {
	entity := internal.FromCountry(country)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return domain.Country{}, fmt.Errorf("creating country in database: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCountryRepository) Update(ctx context.Context, country domain.Country) error {
	entity := internal.FromCountry(country)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating country in database: %w", err)
	}

	return nil
}

func (r *SimpleCountryRepository) GetByID(ctx context.Context, id int64) (domain.Country, error) {
	var entity internal.Country
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Country{}, usecases.ErrCountryNotFound
	}

	if err != nil {
		return domain.Country{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCountryRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Country, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Country{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting countries: %w", err)
	}

	var entities []internal.Country
	err = r.orm.
		WithContext(ctx).
		Order("country_name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Country, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleCountryRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	return r.exists(ctx, "LOWER(country_code) = LOWER(?)", code, excludeID)
}

func (r *SimpleCountryRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.exists(ctx, "LOWER(country_name) = LOWER(?)", name, excludeID)
}

func (r *SimpleCountryRepository) exists(ctx context.Context, condition, value string, excludeID int64) (bool, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Country{}).
		Where(condition, value)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleCountryRepository) Delete(ctx context.Context, id int64) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Country{}, "id = ?", id).
		Error()
	if err != nil {
		return fmt.Errorf("deleting country from database: %w", err)
	}

	return nil
}
