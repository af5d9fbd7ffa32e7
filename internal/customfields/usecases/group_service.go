package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"settings-server/internal/customfields/domain"
)

type GroupService interface {
	ListGroups(ctx context.Context, entityType string) ([]domain.FieldGroup, error)
	GetGroup(ctx context.Context, id domain.ID) (domain.FieldGroup, error)
	SaveGroup(ctx context.Context, group domain.FieldGroup, actor domain.ActorID) (domain.FieldGroup, error)
	DeleteGroup(ctx context.Context, id domain.ID, actor domain.ActorID) error
	ReorderGroups(ctx context.Context, ids []domain.ID, actor domain.ActorID) error
	GroupNameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error)
}

func NewGroupService(groups GroupRepository, definitions DefinitionRepository) *SimpleGroupService {
	return &SimpleGroupService{
		groups:      groups,
		definitions: definitions,
	}
}

var _ GroupService = &SimpleGroupService{}

type SimpleGroupService struct {
	groups      GroupRepository
	definitions DefinitionRepository
}

func (s *SimpleGroupService) ListGroups(ctx context.Context, entityType string) ([]domain.FieldGroup, error) {
	groups, err := s.groups.FindActive(ctx, entityType)
	if err != nil {
		slog.Error("listing field groups", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field groups: %w", err)
	}

	return groups, nil
}

func (s *SimpleGroupService) GetGroup(ctx context.Context, id domain.ID) (domain.FieldGroup, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return domain.FieldGroup{}, ErrGroupNotFound
		}
		slog.Error("getting field group", slog.String("error", err.Error()))
		return domain.FieldGroup{}, fmt.Errorf("getting field group: %w", err)
	}

	fields, err := s.definitions.FindActiveByGroup(ctx, id)
	if err != nil {
		return domain.FieldGroup{}, fmt.Errorf("loading group definitions: %w", err)
	}
	group.Fields = fields

	return group, nil
}

func (s *SimpleGroupService) SaveGroup(ctx context.Context, group domain.FieldGroup, actor domain.ActorID) (domain.FieldGroup, error) {
	taken, err := s.groups.NameExists(ctx, group.EntityType, group.Name, group.ID)
	if err != nil {
		return domain.FieldGroup{}, fmt.Errorf("checking group name: %w", err)
	}
	if taken {
		slog.Warn("field group name already taken",
			slog.String("entity_type", group.EntityType),
			slog.String("name", group.Name))
		return domain.FieldGroup{}, ErrGroupNameTaken
	}

	if group.IsNew() {
		group.StampCreated(actor)
		created, err := s.groups.Create(ctx, group)
		if err != nil {
			slog.Error("creating field group", slog.String("error", err.Error()))
			return domain.FieldGroup{}, fmt.Errorf("creating field group: %w", err)
		}

		slog.Info("field group created",
			slog.Int64("id", int64(created.ID)),
			slog.String("entity_type", created.EntityType),
			slog.String("name", created.Name))
		return created, nil
	}

	existing, err := s.groups.GetByID(ctx, group.ID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return domain.FieldGroup{}, ErrGroupNotFound
		}
		return domain.FieldGroup{}, fmt.Errorf("getting field group: %w", err)
	}

	existing.UpdateInfo(group)
	existing.StampModified(actor)

	if err := s.groups.Update(ctx, existing); err != nil {
		slog.Error("updating field group", slog.String("error", err.Error()))
		return domain.FieldGroup{}, fmt.Errorf("updating field group: %w", err)
	}

	slog.Info("field group updated", slog.Int64("id", int64(existing.ID)))
	return existing, nil
}

func (s *SimpleGroupService) DeleteGroup(ctx context.Context, id domain.ID, actor domain.ActorID) error {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("getting field group: %w", err)
	}

	err = deleteOrArchive(ctx,
		func(ctx context.Context) (bool, error) {
			return s.groups.HasDefinitions(ctx, id)
		},
		func(ctx context.Context) error {
			group.Archive(actor)
			return s.groups.Update(ctx, group)
		},
		func(ctx context.Context) error {
			return s.groups.Delete(ctx, id)
		},
	)
	if err != nil {
		slog.Error("deleting field group", slog.String("error", err.Error()))
		return fmt.Errorf("deleting field group: %w", err)
	}

	slog.Info("field group deleted", slog.Int64("id", int64(id)))
	return nil
}

func (s *SimpleGroupService) ReorderGroups(ctx context.Context, ids []domain.ID, actor domain.ActorID) error {
	if len(ids) == 0 {
		return ErrEmptyReorder
	}

	groups, err := s.groups.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("finding field groups: %w", err)
	}

	byID := make(map[domain.ID]domain.FieldGroup, len(groups))
	for _, group := range groups {
		byID[group.ID] = group
	}

	// sort_order gaps of 10 leave room for later insertions; unknown
	// ids are skipped without error
	touched := make([]domain.FieldGroup, 0, len(ids))
	for i, id := range ids {
		group, ok := byID[id]
		if !ok {
			continue
		}
		group.SortOrder = i * 10
		group.StampModified(actor)
		touched = append(touched, group)
	}

	if err := s.groups.UpdateMany(ctx, touched); err != nil {
		slog.Error("reordering field groups", slog.String("error", err.Error()))
		return fmt.Errorf("reordering field groups: %w", err)
	}

	return nil
}

func (s *SimpleGroupService) GroupNameExists(ctx context.Context, entityType, name string, excludeID domain.ID) (bool, error) {
	return s.groups.NameExists(ctx, entityType, name, excludeID)
}
