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

func NewGeneralCodeRepository(orm sql.ORM) (*SimpleGeneralCodeRepository, error) {
	err := orm.AutoMigrate(&internal.GeneralCode{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleGeneralCodeRepository{
		orm: orm,
	}, nil
}

var _ usecases.GeneralCodeRepository = (*SimpleGeneralCodeRepository)(nil)

type SimpleGeneralCodeRepository struct {
	orm sql.ORM
}

func (r *SimpleGeneralCodeRepository) Create(ctx context.Context, code domain.GeneralCode) (domain.GeneralCode, error) {
	entity := internal.FromGeneralCode(code)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return domain.GeneralCode{}, fmt.Errorf("creating general code in database: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGeneralCodeRepository) Update(ctx context.Context, code domain.GeneralCode) error {
	entity := internal.FromGeneralCode(code)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating general code in database: %w", err)
	}

	return nil
}

func (r *SimpleGeneralCodeRepository) GetByID(ctx context.Context, id int64) (domain.GeneralCode, error) {
	var entity internal.GeneralCode
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.GeneralCode{}, usecases.ErrGeneralCodeNotFound
	}

	if err != nil {
		return domain.GeneralCode{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGeneralCodeRepository) GetByNaturalKey(ctx context.Context, codeType, codeNumber int, languageCode string) (domain.GeneralCode, error) {
	var entity internal.GeneralCode
	err := r.orm.
		WithContext(ctx).
		First(&entity, "code_type = ? AND code_number = ? AND LOWER(language_code) = LOWER(?)",
			codeType, codeNumber, languageCode).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.GeneralCode{}, usecases.ErrGeneralCodeNotFound
	}

	if err != nil {
		return domain.GeneralCode{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGeneralCodeRepository) FindAll(ctx context.Context, filter usecases.GeneralCodeFilter, pagination usecases.Pagination) ([]domain.GeneralCode, int, error) {
	base := r.orm.WithContext(ctx).Model(&internal.GeneralCode{})
	if filter.CodeType != nil {
		base = base.Where("code_type = ?", *filter.CodeType)
	}
	if filter.LanguageCode != "" {
		base = base.Where("LOWER(language_code) = LOWER(?)", filter.LanguageCode)
	}

	var total int64
	err := base.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting general codes: %w", err)
	}

	var entities []internal.GeneralCode
	err = base.
		Order("code_type ASC, code_number ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.GeneralCode, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleGeneralCodeRepository) Exists(ctx context.Context, codeType, codeNumber int, languageCode string, excludeID int64) (bool, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.GeneralCode{}).
		Where("code_type = ? AND code_number = ? AND LOWER(language_code) = LOWER(?)",
			codeType, codeNumber, languageCode)

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

func (r *SimpleGeneralCodeRepository) Delete(ctx context.Context, id int64) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.GeneralCode{}, "id = ?", id).
		Error()
	if err != nil {
		return fmt.Errorf("deleting general code from database: %w", err)
	}

	return nil
}
