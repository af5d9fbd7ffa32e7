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

func NewGroupRepository(orm sql.ORM) (*SimpleGroupRepository, error) {
	err := orm.AutoMigrate(&internal.FieldGroup{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleGroupRepository{
		orm: orm,
	}, nil
}

var _ usecases.GroupRepository = (*SimpleGroupRepository)(nil)

type SimpleGroupRepository struct {
	orm sql.ORM
}

func (r *SimpleGroupRepository) Create(ctx context.Context, group domain.FieldGroup) (domain.FieldGroup, error) {
	entity := internal.FromFieldGroup(group)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return domain.FieldGroup{}, fmt.Errorf("creating field group in database: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGroupRepository) Update(ctx context.Context, group domain.FieldGroup) error {
	entity := internal.FromFieldGroup(group)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating field group in database: %w", err)
	}

	return nil
}

func (r *SimpleGroupRepository) UpdateMany(ctx context.Context, groups []domain.FieldGroup) error {
	if len(groups) == 0 {
		return nil
	}

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, group := range groups {
			entity := internal.FromFieldGroup(group)
			if err := tx.Save(&entity).Error(); err != nil {
				return fmt.Errorf("updating field group %d: %w", entity.ID, err)
			}
		}
		return nil
	})
}

func (r *SimpleGroupRepository) GetByID(ctx context.Context, id domain.ID) (domain.FieldGroup, error) {
	var entity internal.FieldGroup
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", int64(id)).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldGroup{}, usecases.ErrGroupNotFound
	}

	if err != nil {
		return domain.FieldGroup{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGroupRepository) FindActive(ctx context.Context, entityType string) ([]domain.FieldGroup, error) {
	query := r.orm.WithContext(ctx).Where("is_active = ?", true)
	if entityType != "" {
		query = query.Where("LOWER(entity_type) = LOWER(?)", entityType)
	}

	var entities []internal.FieldGroup
	err := query.Order("sort_order ASC").Find(&entities).Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldGroup, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleGroupRepository) FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.FieldGroup, error) {
	var entities []internal.FieldGroup
	err := r.orm.
		WithContext(ctx).
		Where("id IN ?", rawIDs(ids)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldGroup, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleGroupRepository) NameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.FieldGroup{}).
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

func (r *SimpleGroupRepository) HasDefinitions(ctx context.Context, groupID domain.ID) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldDefinition{}).
		Where("group_id = ?", int64(groupID)).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleGroupRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldGroup{}, "id = ?", int64(id)).
		Error()
	if err != nil {
		return fmt.Errorf("deleting field group from database: %w", err)
	}

	return nil
}

func rawIDs(ids []domain.ID) []int64 {
	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}
	return raw
}
