package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"settings-server/internal/customfields/domain"
)

// ValueWrite is one incoming value mutation. The envelope carries every
// candidate slot; the owning definition's field type picks the
// authoritative one.
type ValueWrite struct {
	EntityType        string
	EntityID          int64
	FieldDefinitionID domain.ID
	Envelope          domain.ValueEnvelope
}

// FieldWithValue pairs a definition with the stored value of one entity
// instance, nil when the instance has no value for that field yet.
type FieldWithValue struct {
	Definition domain.FieldDefinition
	Value      *domain.FieldValue
}

type ValueService interface {
	ListValuesByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.FieldValue, error)
	FieldsWithValues(ctx context.Context, entityType string, entityID int64) ([]FieldWithValue, error)
	FieldsWithValuesGrouped(ctx context.Context, entityType string, entityID int64) ([]GroupBucket[FieldWithValue], error)
	SaveValues(ctx context.Context, writes []ValueWrite, actor domain.ActorID) ([]domain.FieldValue, error)
}

func NewValueService(
	values ValueRepository,
	definitions DefinitionRepository,
	groups GroupRepository,
	definitionService DefinitionService,
) *SimpleValueService {
	return &SimpleValueService{
		values:            values,
		definitions:       definitions,
		groups:            groups,
		definitionService: definitionService,
	}
}

var _ ValueService = &SimpleValueService{}

type SimpleValueService struct {
	values            ValueRepository
	definitions       DefinitionRepository
	groups            GroupRepository
	definitionService DefinitionService
}

func (s *SimpleValueService) ListValuesByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.FieldValue, error) {
	values, err := s.values.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		slog.Error("listing field values",
			slog.String("entity_type", entityType),
			slog.Int64("entity_id", entityID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field values: %w", err)
	}

	return values, nil
}

func (s *SimpleValueService) FieldsWithValues(ctx context.Context, entityType string, entityID int64) ([]FieldWithValue, error) {
	definitions, err := s.definitionService.ListDefinitionsByEntityType(ctx, entityType)
	if err != nil {
		return nil, err
	}

	// entity id zero denotes a not-yet-persisted entity: render the
	// empty form with no values at all
	if entityID == 0 {
		result := make([]FieldWithValue, len(definitions))
		for i, definition := range definitions {
			result[i] = FieldWithValue{Definition: definition}
		}
		return result, nil
	}

	values, err := s.values.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("listing field values: %w", err)
	}

	valueByDefinition := make(map[domain.ID]domain.FieldValue, len(values))
	for _, value := range values {
		valueByDefinition[value.FieldDefinitionID] = value
	}

	result := make([]FieldWithValue, len(definitions))
	for i, definition := range definitions {
		item := FieldWithValue{Definition: definition}
		if value, ok := valueByDefinition[definition.ID]; ok {
			value := value
			item.Value = &value
		}
		result[i] = item
	}

	return result, nil
}

func (s *SimpleValueService) FieldsWithValuesGrouped(ctx context.Context, entityType string, entityID int64) ([]GroupBucket[FieldWithValue], error) {
	fields, err := s.FieldsWithValues(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.FindActive(ctx, entityType)
	if err != nil {
		return nil, fmt.Errorf("listing field groups: %w", err)
	}

	return bucketByGroup(entityType, groups, fields,
		func(f FieldWithValue) *domain.ID { return f.Definition.GroupID },
		true,
	), nil
}

// SaveValues upserts the batch sequentially by natural key. A failing
// item aborts the remainder of the batch; earlier items stay persisted.
func (s *SimpleValueService) SaveValues(ctx context.Context, writes []ValueWrite, actor domain.ActorID) ([]domain.FieldValue, error) {
	if len(writes) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]domain.FieldValue, 0, len(writes))

	for _, write := range writes {
		definition, err := s.definitions.GetByID(ctx, write.FieldDefinitionID)
		if err != nil {
			if errors.Is(err, ErrDefinitionNotFound) {
				return results, ErrDefinitionNotFound
			}
			return results, fmt.Errorf("getting field definition: %w", err)
		}

		data := definition.FieldType.SelectData(write.Envelope)

		existing, found, err := s.values.GetByNaturalKey(ctx, write.EntityType, write.EntityID, write.FieldDefinitionID)
		if err != nil {
			return results, fmt.Errorf("looking up field value: %w", err)
		}

		if !found {
			value := domain.FieldValue{
				EntityType:        write.EntityType,
				EntityID:          write.EntityID,
				FieldDefinitionID: write.FieldDefinitionID,
				Data:              data,
			}
			value.StampCreated(actor)
			value.StampModified(actor)

			created, err := s.values.Create(ctx, value)
			if err != nil {
				return results, fmt.Errorf("creating field value: %w", err)
			}
			results = append(results, created)
			continue
		}

		existing.Data = data
		existing.StampModified(actor)
		if err := s.values.Update(ctx, existing); err != nil {
			return results, fmt.Errorf("updating field value: %w", err)
		}
		results = append(results, existing)
	}

	slog.Info("field values saved", slog.Int("count", len(results)))
	return results, nil
}
