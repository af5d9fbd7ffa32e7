package usecases

import (
	"context"
	"errors"

	"settings-server/internal/customfields/domain"
)

var (
	ErrGroupNotFound      = errors.New("field group not found")
	ErrGroupNameTaken     = errors.New("field group name already exists for entity type")
	ErrDefinitionNotFound = errors.New("field definition not found")
	ErrFieldNameTaken     = errors.New("field name already exists for entity type")
	ErrOptionNotFound     = errors.New("field option not found")
	ErrEmptyBatch         = errors.New("batch must contain at least one item")
	ErrEmptyReorder       = errors.New("reorder must contain at least one id")
)

type GroupRepository interface {
	Create(ctx context.Context, group domain.FieldGroup) (domain.FieldGroup, error)
	Update(ctx context.Context, group domain.FieldGroup) error
	// UpdateMany persists the whole batch inside one transaction.
	UpdateMany(ctx context.Context, groups []domain.FieldGroup) error
	GetByID(ctx context.Context, id domain.ID) (domain.FieldGroup, error)
	FindActive(ctx context.Context, entityType string) ([]domain.FieldGroup, error)
	FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.FieldGroup, error)
	NameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error)
	HasDefinitions(ctx context.Context, groupID domain.ID) (bool, error)
	Delete(ctx context.Context, id domain.ID) error
}

type DefinitionRepository interface {
	Create(ctx context.Context, definition domain.FieldDefinition) (domain.FieldDefinition, error)
	Update(ctx context.Context, definition domain.FieldDefinition) error
	UpdateMany(ctx context.Context, definitions []domain.FieldDefinition) error
	GetByID(ctx context.Context, id domain.ID) (domain.FieldDefinition, error)
	FindActive(ctx context.Context) ([]domain.FieldDefinition, error)
	FindActiveByEntityType(ctx context.Context, entityType string) ([]domain.FieldDefinition, error)
	FindActiveByGroup(ctx context.Context, groupID domain.ID) ([]domain.FieldDefinition, error)
	FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.FieldDefinition, error)
	NameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error)
	Delete(ctx context.Context, id domain.ID) error
}

type OptionRepository interface {
	Create(ctx context.Context, option domain.FieldOption) (domain.FieldOption, error)
	Update(ctx context.Context, option domain.FieldOption) error
	UpdateMany(ctx context.Context, options []domain.FieldOption) error
	FindActiveByDefinition(ctx context.Context, definitionID domain.ID) ([]domain.FieldOption, error)
	FindActiveByDefinitions(ctx context.Context, definitionIDs []domain.ID) ([]domain.FieldOption, error)
	// FindAllByDefinition also returns archived options; reconciliation
	// needs the full set to decide between update, archive, and delete.
	FindAllByDefinition(ctx context.Context, definitionID domain.ID) ([]domain.FieldOption, error)
	FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.FieldOption, error)
	Delete(ctx context.Context, id domain.ID) error
}

type ValueRepository interface {
	Create(ctx context.Context, value domain.FieldValue) (domain.FieldValue, error)
	Update(ctx context.Context, value domain.FieldValue) error
	GetByNaturalKey(ctx context.Context, entityType string, entityID int64, definitionID domain.ID) (domain.FieldValue, bool, error)
	FindByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.FieldValue, error)
	ExistsForDefinition(ctx context.Context, definitionID domain.ID) (bool, error)
	// ExistsForOption reports whether any stored value references the
	// option, either by number-slot equality (single select) or by
	// membership in a multi-select set.
	ExistsForOption(ctx context.Context, definitionID, optionID domain.ID) (bool, error)
}
