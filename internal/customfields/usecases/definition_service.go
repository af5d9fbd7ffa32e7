package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"settings-server/internal/customfields/domain"
)

type DefinitionService interface {
	ListDefinitions(ctx context.Context) ([]domain.FieldDefinition, error)
	ListDefinitionsByEntityType(ctx context.Context, entityType string) ([]domain.FieldDefinition, error)
	ListDefinitionsGrouped(ctx context.Context, entityType string) ([]GroupBucket[domain.FieldDefinition], error)
	ListDefinitionsByGroup(ctx context.Context, groupID domain.ID) ([]domain.FieldDefinition, error)
	GetDefinition(ctx context.Context, id domain.ID) (domain.FieldDefinition, error)
	SaveDefinition(ctx context.Context, definition domain.FieldDefinition, actor domain.ActorID) (domain.FieldDefinition, error)
	DeleteDefinition(ctx context.Context, id domain.ID, actor domain.ActorID) error
	ReorderDefinitions(ctx context.Context, ids []domain.ID, actor domain.ActorID) error
	FieldNameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error)
}

func NewDefinitionService(
	definitions DefinitionRepository,
	groups GroupRepository,
	values ValueRepository,
	optionService OptionService,
	options OptionRepository,
) *SimpleDefinitionService {
	return &SimpleDefinitionService{
		definitions:   definitions,
		groups:        groups,
		values:        values,
		optionService: optionService,
		options:       options,
	}
}

var _ DefinitionService = &SimpleDefinitionService{}

type SimpleDefinitionService struct {
	definitions   DefinitionRepository
	groups        GroupRepository
	values        ValueRepository
	optionService OptionService
	options       OptionRepository
}

func (s *SimpleDefinitionService) ListDefinitions(ctx context.Context) ([]domain.FieldDefinition, error) {
	definitions, err := s.definitions.FindActive(ctx)
	if err != nil {
		slog.Error("listing field definitions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field definitions: %w", err)
	}

	if err := s.attachOptions(ctx, definitions); err != nil {
		return nil, err
	}

	return definitions, nil
}

func (s *SimpleDefinitionService) ListDefinitionsByEntityType(ctx context.Context, entityType string) ([]domain.FieldDefinition, error) {
	definitions, err := s.definitions.FindActiveByEntityType(ctx, entityType)
	if err != nil {
		slog.Error("listing field definitions by entity type",
			slog.String("entity_type", entityType),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field definitions: %w", err)
	}

	if err := s.attachOptions(ctx, definitions); err != nil {
		return nil, err
	}

	return definitions, nil
}

func (s *SimpleDefinitionService) ListDefinitionsGrouped(ctx context.Context, entityType string) ([]GroupBucket[domain.FieldDefinition], error) {
	groups, err := s.groups.FindActive(ctx, entityType)
	if err != nil {
		return nil, fmt.Errorf("listing field groups: %w", err)
	}

	definitions, err := s.ListDefinitionsByEntityType(ctx, entityType)
	if err != nil {
		return nil, err
	}

	return bucketByGroup(entityType, groups, definitions,
		func(d domain.FieldDefinition) *domain.ID { return d.GroupID },
		false,
	), nil
}

func (s *SimpleDefinitionService) ListDefinitionsByGroup(ctx context.Context, groupID domain.ID) ([]domain.FieldDefinition, error) {
	definitions, err := s.definitions.FindActiveByGroup(ctx, groupID)
	if err != nil {
		slog.Error("listing field definitions by group",
			slog.Int64("group_id", int64(groupID)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field definitions: %w", err)
	}

	if err := s.attachOptions(ctx, definitions); err != nil {
		return nil, err
	}

	return definitions, nil
}

func (s *SimpleDefinitionService) GetDefinition(ctx context.Context, id domain.ID) (domain.FieldDefinition, error) {
	definition, err := s.definitions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDefinitionNotFound) {
			return domain.FieldDefinition{}, ErrDefinitionNotFound
		}
		slog.Error("getting field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, fmt.Errorf("getting field definition: %w", err)
	}

	options, err := s.options.FindActiveByDefinition(ctx, id)
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("loading field options: %w", err)
	}
	definition.Options = options

	return definition, nil
}

func (s *SimpleDefinitionService) SaveDefinition(ctx context.Context, definition domain.FieldDefinition, actor domain.ActorID) (domain.FieldDefinition, error) {
	taken, err := s.definitions.NameExists(ctx, definition.EntityType, definition.Name, definition.ID)
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("checking field name: %w", err)
	}
	if taken {
		slog.Warn("field name already taken",
			slog.String("entity_type", definition.EntityType),
			slog.String("name", definition.Name))
		return domain.FieldDefinition{}, ErrFieldNameTaken
	}

	// GroupName is denormalized onto the definition row; resolve it from
	// the referenced group rather than trusting the payload.
	if definition.GroupID != nil {
		group, err := s.groups.GetByID(ctx, *definition.GroupID)
		if err != nil {
			if errors.Is(err, ErrGroupNotFound) {
				return domain.FieldDefinition{}, ErrGroupNotFound
			}
			return domain.FieldDefinition{}, fmt.Errorf("getting field group: %w", err)
		}
		definition.GroupName = group.Name
	} else {
		definition.GroupName = ""
	}

	desiredOptions := definition.Options

	var saved domain.FieldDefinition
	if definition.IsNew() {
		definition.StampCreated(actor)
		saved, err = s.definitions.Create(ctx, definition)
		if err != nil {
			slog.Error("creating field definition", slog.String("error", err.Error()))
			return domain.FieldDefinition{}, fmt.Errorf("creating field definition: %w", err)
		}

		slog.Info("field definition created",
			slog.Int64("id", int64(saved.ID)),
			slog.String("entity_type", saved.EntityType),
			slog.String("name", saved.Name))
	} else {
		existing, err := s.definitions.GetByID(ctx, definition.ID)
		if err != nil {
			if errors.Is(err, ErrDefinitionNotFound) {
				return domain.FieldDefinition{}, ErrDefinitionNotFound
			}
			return domain.FieldDefinition{}, fmt.Errorf("getting field definition: %w", err)
		}

		existing.UpdateInfo(definition)
		existing.StampModified(actor)

		if err := s.definitions.Update(ctx, existing); err != nil {
			slog.Error("updating field definition", slog.String("error", err.Error()))
			return domain.FieldDefinition{}, fmt.Errorf("updating field definition: %w", err)
		}

		slog.Info("field definition updated", slog.Int64("id", int64(existing.ID)))
		saved = existing
	}

	if len(desiredOptions) > 0 {
		options, err := s.optionService.ReconcileOptions(ctx, saved.ID, desiredOptions, actor)
		if err != nil {
			return domain.FieldDefinition{}, fmt.Errorf("reconciling field options: %w", err)
		}
		saved.Options = options
	}

	return saved, nil
}

func (s *SimpleDefinitionService) DeleteDefinition(ctx context.Context, id domain.ID, actor domain.ActorID) error {
	definition, err := s.definitions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDefinitionNotFound) {
			return ErrDefinitionNotFound
		}
		return fmt.Errorf("getting field definition: %w", err)
	}

	err = deleteOrArchive(ctx,
		func(ctx context.Context) (bool, error) {
			return s.values.ExistsForDefinition(ctx, id)
		},
		func(ctx context.Context) error {
			definition.Archive(actor)
			return s.definitions.Update(ctx, definition)
		},
		func(ctx context.Context) error {
			return s.definitions.Delete(ctx, id)
		},
	)
	if err != nil {
		slog.Error("deleting field definition", slog.String("error", err.Error()))
		return fmt.Errorf("deleting field definition: %w", err)
	}

	slog.Info("field definition deleted", slog.Int64("id", int64(id)))
	return nil
}

func (s *SimpleDefinitionService) ReorderDefinitions(ctx context.Context, ids []domain.ID, actor domain.ActorID) error {
	if len(ids) == 0 {
		return ErrEmptyReorder
	}

	definitions, err := s.definitions.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("finding field definitions: %w", err)
	}

	byID := make(map[domain.ID]domain.FieldDefinition, len(definitions))
	for _, definition := range definitions {
		byID[definition.ID] = definition
	}

	touched := make([]domain.FieldDefinition, 0, len(ids))
	for i, id := range ids {
		definition, ok := byID[id]
		if !ok {
			continue
		}
		definition.SortOrder = i * 10
		definition.StampModified(actor)
		touched = append(touched, definition)
	}

	if err := s.definitions.UpdateMany(ctx, touched); err != nil {
		slog.Error("reordering field definitions", slog.String("error", err.Error()))
		return fmt.Errorf("reordering field definitions: %w", err)
	}

	return nil
}

func (s *SimpleDefinitionService) FieldNameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error) {
	return s.definitions.NameExists(ctx, entityType, name, excludeID)
}

// attachOptions loads the active options of every listed definition in
// one query and distributes them in place.
func (s *SimpleDefinitionService) attachOptions(ctx context.Context, definitions []domain.FieldDefinition) error {
	if len(definitions) == 0 {
		return nil
	}

	ids := make([]domain.ID, len(definitions))
	for i, definition := range definitions {
		ids[i] = definition.ID
	}

	options, err := s.options.FindActiveByDefinitions(ctx, ids)
	if err != nil {
		return fmt.Errorf("loading field options: %w", err)
	}

	byDefinition := make(map[domain.ID][]domain.FieldOption, len(definitions))
	for _, option := range options {
		byDefinition[option.FieldDefinitionID] = append(byDefinition[option.FieldDefinitionID], option)
	}

	for i := range definitions {
		definitions[i].Options = byDefinition[definitions[i].ID]
	}

	return nil
}
