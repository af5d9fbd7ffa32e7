package persistence

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/persistence/internal"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/sql"
)

func NewValueRepository(orm sql.ORM) (*SimpleValueRepository, error) {
	err := orm.AutoMigrate(&internal.FieldValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleValueRepository{
		orm: orm,
	}, nil
}

var _ usecases.ValueRepository = (*SimpleValueRepository)(nil)

type SimpleValueRepository struct {
	orm sql.ORM
}

func (r *SimpleValueRepository) Create(ctx context.Context, value domain.FieldValue) (domain.FieldValue, error) {
	entity := internal.FromFieldValue(value)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return domain.FieldValue{}, fmt.Errorf("creating field value in database: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleValueRepository) Update(ctx context.Context, value domain.FieldValue) error {
	// Save writes every column, so switching a value to a different
	// slot also clears the previously populated one.
	entity := internal.FromFieldValue(value)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating field value in database: %w", err)
	}

	return nil
}

func (r *SimpleValueRepository) GetByNaturalKey(ctx context.Context, entityType string, entityID int64, definitionID domain.ID) (domain.FieldValue, bool, error) {
	var entity internal.FieldValue
	err := r.orm.
		WithContext(ctx).
		First(&entity, "LOWER(entity_type) = LOWER(?) AND entity_id = ? AND field_definition_id = ?",
			entityType, entityID, int64(definitionID)).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldValue{}, false, nil
	}

	if err != nil {
		return domain.FieldValue{}, false, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), true, nil
}

func (r *SimpleValueRepository) FindByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.FieldValue, error) {
	var entities []internal.FieldValue
	err := r.orm.
		WithContext(ctx).
		Where("LOWER(entity_type) = LOWER(?) AND entity_id = ?", entityType, entityID).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldValue, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleValueRepository) ExistsForDefinition(ctx context.Context, definitionID domain.ID) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldValue{}).
		Where("field_definition_id = ?", int64(definitionID)).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleValueRepository) ExistsForOption(ctx context.Context, definitionID, optionID domain.ID) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldValue{}).
		Where("field_definition_id = ? AND number_value = ?", int64(definitionID), float64(optionID)).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	// Multi-select sets are stored as JSON text, so membership is
	// decided in Go rather than in SQL.
	var entities []internal.FieldValue
	err = r.orm.
		WithContext(ctx).
		Where("field_definition_id = ? AND selected_options IS NOT NULL", int64(definitionID)).
		Find(&entities).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	for _, entity := range entities {
		if slices.Contains(internal.DecodeOptionIDs(entity.SelectedOptions), optionID) {
			return true, nil
		}
	}

	return false, nil
}
