package persistence

import (
	"context"
	"fmt"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/persistence/internal"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/sql"
)

func NewOptionRepository(orm sql.ORM) (*SimpleOptionRepository, error) {
	err := orm.AutoMigrate(&internal.FieldOption{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleOptionRepository{
		orm: orm,
	}, nil
}

var _ usecases.OptionRepository = (*SimpleOptionRepository)(nil)

type SimpleOptionRepository struct {
	orm sql.ORM
}

func (r *SimpleOptionRepository) Create(ctx context.Context, option domain.FieldOption) (domain.FieldOption, error) {
	entity := internal.FromFieldOption(option)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return domain.FieldOption{}, fmt.Errorf("creating field option in database: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleOptionRepository) Update(ctx context.Context, option domain.FieldOption) error {
	entity := internal.FromFieldOption(option)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating field option in database: %w", err)
	}

	return nil
}

func (r *SimpleOptionRepository) UpdateMany(ctx context.Context, options []domain.FieldOption) error {
	if len(options) == 0 {
		return nil
	}

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, option := range options {
			entity := internal.FromFieldOption(option)
			if err := tx.Save(&entity).Error(); err != nil {
				return fmt.Errorf("updating field option %d: %w", entity.ID, err)
			}
		}
		return nil
	})
}

func (r *SimpleOptionRepository) FindActiveByDefinition(ctx context.Context, definitionID domain.ID) ([]domain.FieldOption, error) {
	var entities []internal.FieldOption
	err := r.orm.
		WithContext(ctx).
		Where("is_active = ? AND field_definition_id = ?", true, int64(definitionID)).
		Order("sort_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainOptions(entities), nil
}

func (r *SimpleOptionRepository) FindActiveByDefinitions(ctx context.Context, definitionIDs []domain.ID) ([]domain.FieldOption, error) {
	var entities []internal.FieldOption
	err := r.orm.
		WithContext(ctx).
		Where("is_active = ? AND field_definition_id IN ?", true, rawIDs(definitionIDs)).
		Order("field_definition_id ASC, sort_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainOptions(entities), nil
}

func (r *SimpleOptionRepository) FindAllByDefinition(ctx context.Context, definitionID domain.ID) ([]domain.FieldOption, error) {
	var entities []internal.FieldOption
	err := r.orm.
		WithContext(ctx).
		Where("field_definition_id = ?", int64(definitionID)).
		Order("sort_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainOptions(entities), nil
}

func (r *SimpleOptionRepository) FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.FieldOption, error) {
	var entities []internal.FieldOption
	err := r.orm.
		WithContext(ctx).
		Where("id IN ?", rawIDs(ids)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainOptions(entities), nil
}

func (r *SimpleOptionRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldOption{}, "id = ?", int64(id)).
		Error()
	if err != nil {
		return fmt.Errorf("deleting field option from database: %w", err)
	}

	return nil
}

func toDomainOptions(entities []internal.FieldOption) []domain.FieldOption {
	result := make([]domain.FieldOption, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result
}
