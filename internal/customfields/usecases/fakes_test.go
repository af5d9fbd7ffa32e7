package usecases_test

import (
	"context"
	"slices"
	"sort"
	"strings"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/usecases"
)

// In-memory doubles for the repository ports. They keep just enough
// semantics (case-insensitive names, sort_order listing, natural keys)
// for the services to behave the way the real gorm repositories do.

type fakeGroupRepository struct {
	nextID domain.ID
	groups map[domain.ID]domain.FieldGroup
	// definition group ids, maintained by the definition fake when the
	// two are wired together
	definitionGroups func() []*domain.ID
}

func newFakeGroupRepository() *fakeGroupRepository {
	return &fakeGroupRepository{
		nextID:           1,
		groups:           make(map[domain.ID]domain.FieldGroup),
		definitionGroups: func() []*domain.ID { return nil },
	}
}

var _ usecases.GroupRepository = (*fakeGroupRepository)(nil)

func (f *fakeGroupRepository) Create(_ context.Context, group domain.FieldGroup) (domain.FieldGroup, error) {
	group.ID = f.nextID
	f.nextID++
	f.groups[group.ID] = group
	return group, nil
}

func (f *fakeGroupRepository) Update(_ context.Context, group domain.FieldGroup) error {
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepository) UpdateMany(ctx context.Context, groups []domain.FieldGroup) error {
	for _, group := range groups {
		if err := f.Update(ctx, group); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGroupRepository) GetByID(_ context.Context, id domain.ID) (domain.FieldGroup, error) {
	group, ok := f.groups[id]
	if !ok {
		return domain.FieldGroup{}, usecases.ErrGroupNotFound
	}
	return group, nil
}

func (f *fakeGroupRepository) FindActive(_ context.Context, entityType string) ([]domain.FieldGroup, error) {
	var result []domain.FieldGroup
	for _, group := range f.groups {
		if !group.IsActive {
			continue
		}
		if entityType != "" && !strings.EqualFold(group.EntityType, entityType) {
			continue
		}
		result = append(result, group)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (f *fakeGroupRepository) FindByIDs(_ context.Context, ids []domain.ID) ([]domain.FieldGroup, error) {
	var result []domain.FieldGroup
	for _, id := range ids {
		if group, ok := f.groups[id]; ok {
			result = append(result, group)
		}
	}
	return result, nil
}

func (f *fakeGroupRepository) NameExists(_ context.Context, entityType, name string, excludeID domain.ID) (bool, error) {
	for _, group := range f.groups {
		if group.ID == excludeID {
			continue
		}
		if strings.EqualFold(group.EntityType, entityType) && strings.EqualFold(group.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupRepository) HasDefinitions(_ context.Context, groupID domain.ID) (bool, error) {
	for _, id := range f.definitionGroups() {
		if id != nil && *id == groupID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupRepository) Delete(_ context.Context, id domain.ID) error {
	delete(f.groups, id)
	return nil
}

type fakeDefinitionRepository struct {
	nextID      domain.ID
	definitions map[domain.ID]domain.FieldDefinition
}

func newFakeDefinitionRepository() *fakeDefinitionRepository {
	return &fakeDefinitionRepository{
		nextID:      1,
		definitions: make(map[domain.ID]domain.FieldDefinition),
	}
}

var _ usecases.DefinitionRepository = (*fakeDefinitionRepository)(nil)

func (f *fakeDefinitionRepository) groupIDs() []*domain.ID {
	var ids []*domain.ID
	for _, definition := range f.definitions {
		ids = append(ids, definition.GroupID)
	}
	return ids
}

func (f *fakeDefinitionRepository) Create(_ context.Context, definition domain.FieldDefinition) (domain.FieldDefinition, error) {
	definition.ID = f.nextID
	f.nextID++
	f.definitions[definition.ID] = definition
	return definition, nil
}

func (f *fakeDefinitionRepository) Update(_ context.Context, definition domain.FieldDefinition) error {
	f.definitions[definition.ID] = definition
	return nil
}

func (f *fakeDefinitionRepository) UpdateMany(ctx context.Context, definitions []domain.FieldDefinition) error {
	for _, definition := range definitions {
		if err := f.Update(ctx, definition); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeDefinitionRepository) GetByID(_ context.Context, id domain.ID) (domain.FieldDefinition, error) {
	definition, ok := f.definitions[id]
	if !ok {
		return domain.FieldDefinition{}, usecases.ErrDefinitionNotFound
	}
	return definition, nil
}

func (f *fakeDefinitionRepository) FindActive(_ context.Context) ([]domain.FieldDefinition, error) {
	return f.findActive(func(domain.FieldDefinition) bool { return true }), nil
}

func (f *fakeDefinitionRepository) FindActiveByEntityType(_ context.Context, entityType string) ([]domain.FieldDefinition, error) {
	return f.findActive(func(d domain.FieldDefinition) bool {
		return strings.EqualFold(d.EntityType, entityType)
	}), nil
}

func (f *fakeDefinitionRepository) FindActiveByGroup(_ context.Context, groupID domain.ID) ([]domain.FieldDefinition, error) {
	return f.findActive(func(d domain.FieldDefinition) bool {
		return d.GroupID != nil && *d.GroupID == groupID
	}), nil
}

func (f *fakeDefinitionRepository) findActive(match func(domain.FieldDefinition) bool) []domain.FieldDefinition {
	var result []domain.FieldDefinition
	for _, definition := range f.definitions {
		if definition.IsActive && match(definition) {
			result = append(result, definition)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result
}

func (f *fakeDefinitionRepository) FindByIDs(_ context.Context, ids []domain.ID) ([]domain.FieldDefinition, error) {
	var result []domain.FieldDefinition
	for _, id := range ids {
		if definition, ok := f.definitions[id]; ok {
			result = append(result, definition)
		}
	}
	return result, nil
}

func (f *fakeDefinitionRepository) NameExists(_ context.Context, entityType, name string, excludeID domain.ID) (bool, error) {
	for _, definition := range f.definitions {
		if definition.ID == excludeID {
			continue
		}
		if strings.EqualFold(definition.EntityType, entityType) && strings.EqualFold(definition.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDefinitionRepository) Delete(_ context.Context, id domain.ID) error {
	delete(f.definitions, id)
	return nil
}

type fakeOptionRepository struct {
	nextID  domain.ID
	options map[domain.ID]domain.FieldOption
}

func newFakeOptionRepository() *fakeOptionRepository {
	return &fakeOptionRepository{
		nextID:  1,
		options: make(map[domain.ID]domain.FieldOption),
	}
}

var _ usecases.OptionRepository = (*fakeOptionRepository)(nil)

func (f *fakeOptionRepository) Create(_ context.Context, option domain.FieldOption) (domain.FieldOption, error) {
	option.ID = f.nextID
	f.nextID++
	f.options[option.ID] = option
	return option, nil
}

func (f *fakeOptionRepository) Update(_ context.Context, option domain.FieldOption) error {
	f.options[option.ID] = option
	return nil
}

func (f *fakeOptionRepository) UpdateMany(ctx context.Context, options []domain.FieldOption) error {
	for _, option := range options {
		if err := f.Update(ctx, option); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeOptionRepository) FindActiveByDefinition(_ context.Context, definitionID domain.ID) ([]domain.FieldOption, error) {
	return f.find(func(o domain.FieldOption) bool {
		return o.IsActive && o.FieldDefinitionID == definitionID
	}), nil
}

func (f *fakeOptionRepository) FindActiveByDefinitions(_ context.Context, definitionIDs []domain.ID) ([]domain.FieldOption, error) {
	return f.find(func(o domain.FieldOption) bool {
		return o.IsActive && slices.Contains(definitionIDs, o.FieldDefinitionID)
	}), nil
}

func (f *fakeOptionRepository) FindAllByDefinition(_ context.Context, definitionID domain.ID) ([]domain.FieldOption, error) {
	return f.find(func(o domain.FieldOption) bool {
		return o.FieldDefinitionID == definitionID
	}), nil
}

func (f *fakeOptionRepository) FindByIDs(_ context.Context, ids []domain.ID) ([]domain.FieldOption, error) {
	return f.find(func(o domain.FieldOption) bool {
		return slices.Contains(ids, o.ID)
	}), nil
}

func (f *fakeOptionRepository) find(match func(domain.FieldOption) bool) []domain.FieldOption {
	var result []domain.FieldOption
	for _, option := range f.options {
		if match(option) {
			result = append(result, option)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result
}

func (f *fakeOptionRepository) Delete(_ context.Context, id domain.ID) error {
	delete(f.options, id)
	return nil
}

type fakeValueRepository struct {
	nextID domain.ID
	values map[domain.ID]domain.FieldValue
}

func newFakeValueRepository() *fakeValueRepository {
	return &fakeValueRepository{
		nextID: 1,
		values: make(map[domain.ID]domain.FieldValue),
	}
}

var _ usecases.ValueRepository = (*fakeValueRepository)(nil)

func (f *fakeValueRepository) Create(_ context.Context, value domain.FieldValue) (domain.FieldValue, error) {
	value.ID = f.nextID
	f.nextID++
	f.values[value.ID] = value
	return value, nil
}

func (f *fakeValueRepository) Update(_ context.Context, value domain.FieldValue) error {
	f.values[value.ID] = value
	return nil
}

func (f *fakeValueRepository) GetByNaturalKey(_ context.Context, entityType string, entityID int64, definitionID domain.ID) (domain.FieldValue, bool, error) {
	for _, value := range f.values {
		if strings.EqualFold(value.EntityType, entityType) &&
			value.EntityID == entityID &&
			value.FieldDefinitionID == definitionID {
			return value, true, nil
		}
	}
	return domain.FieldValue{}, false, nil
}

func (f *fakeValueRepository) FindByEntity(_ context.Context, entityType string, entityID int64) ([]domain.FieldValue, error) {
	var result []domain.FieldValue
	for _, value := range f.values {
		if strings.EqualFold(value.EntityType, entityType) && value.EntityID == entityID {
			result = append(result, value)
		}
	}
	return result, nil
}

func (f *fakeValueRepository) ExistsForDefinition(_ context.Context, definitionID domain.ID) (bool, error) {
	for _, value := range f.values {
		if value.FieldDefinitionID == definitionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeValueRepository) ExistsForOption(_ context.Context, definitionID, optionID domain.ID) (bool, error) {
	for _, value := range f.values {
		if value.FieldDefinitionID != definitionID {
			continue
		}
		if number, ok := value.Data.(domain.NumberData); ok && domain.ID(number) == optionID {
			return true, nil
		}
		if slices.Contains(value.OptionIDs(), optionID) {
			return true, nil
		}
	}
	return false, nil
}
