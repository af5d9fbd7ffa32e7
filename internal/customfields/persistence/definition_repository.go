package persistence

import (
	"context"
	"errors"
	"fmt"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/persistence/internal"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/sql"
)

func NewDefinitionRepository(orm sql.ORM) (*SimpleDefinitionRepository, error) {
	err := orm.AutoMigrate(&internal.FieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDefinitionRepository{
		orm: orm,
	}, nil
}

var _ usecases.DefinitionRepository = (*SimpleDefinitionRepository)(nil)

type SimpleDefinitionRepository struct {
	orm sql.ORM
}

func (r *SimpleDefinitionRepository) Create(ctx context.Context, definition domain.FieldDefinition) (domain.FieldDefinition, error) {
	entity := internal.FromFieldDefinition(definition)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("creating field definition in database: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDefinitionRepository) Update(ctx context.Context, definition domain.FieldDefinition) error {
	entity := internal.FromFieldDefinition(definition)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating field definition in database: %w", err)
	}

	return nil
}

func (r *SimpleDefinitionRepository) UpdateMany(ctx context.Context, definitions []domain.FieldDefinition) error {
	if len(definitions) == 0 {
		return nil
	}

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, definition := range definitions {
			entity := internal.FromFieldDefinition(definition)
			if err := tx.Save(&entity).Error(); err != nil {
				return fmt.Errorf("updating field definition %d: %w", entity.ID, err)
			}
		}
		return nil
	})
}

func (r *SimpleDefinitionRepository) GetByID(ctx context.Context, id domain.ID) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", int64(id)).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrDefinitionNotFound
	}

	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDefinitionRepository) FindActive(ctx context.Context) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainDefinitions(entities), nil
}

func (r *SimpleDefinitionRepository) FindActiveByEntityType(ctx context.Context, entityType string) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("is_active = ? AND LOWER(entity_type) = LOWER(?)", true, entityType).
		Order("sort_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainDefinitions(entities), nil
}

func (r *SimpleDefinitionRepository) FindActiveByGroup(ctx context.Context, groupID domain.ID) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("is_active = ? AND group_id = ?", true, int64(groupID)).
		Order("sort_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainDefinitions(entities), nil
}

func (r *SimpleDefinitionRepository) FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("id IN ?", rawIDs(ids)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainDefinitions(entities), nil
}

func (r *SimpleDefinitionRepository) NameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.FieldDefinition{}).
		Where("LOWER(entity_type) = LOWER(?) AND LOWER(name) = LOWER(?)", entityType, name)

	if !excludeID.IsZero() {
		query = query.Where("id <> ?", int64(excludeID))
	}

	var count int64
	err := query.Count(&count).Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleDefinitionRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldDefinition{}, "id = ?", int64(id)).
		Error()
	if err != nil {
		return fmt.Errorf("deleting field definition from database: %w", err)
	}

	return nil
}

func toDomainDefinitions(entities []internal.FieldDefinition) []domain.FieldDefinition {
	result := make([]domain.FieldDefinition, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result
}
