package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"settings-server/internal/customfields/domain"
)

type OptionService interface {
	ListOptions(ctx context.Context, definitionID domain.ID) ([]domain.FieldOption, error)
	ReconcileOptions(ctx context.Context, definitionID domain.ID, desired []domain.FieldOption, actor domain.ActorID) ([]domain.FieldOption, error)
	ReorderOptions(ctx context.Context, ids []domain.ID, actor domain.ActorID) error
}

func NewOptionService(
	options OptionRepository,
	definitions DefinitionRepository,
	values ValueRepository,
) *SimpleOptionService {
	return &SimpleOptionService{
		options:     options,
		definitions: definitions,
		values:      values,
	}
}

var _ OptionService = &SimpleOptionService{}

type SimpleOptionService struct {
	options     OptionRepository
	definitions DefinitionRepository
	values      ValueRepository
}

func (s *SimpleOptionService) ListOptions(ctx context.Context, definitionID domain.ID) ([]domain.FieldOption, error) {
	options, err := s.options.FindActiveByDefinition(ctx, definitionID)
	if err != nil {
		slog.Error("listing field options",
			slog.Int64("definition_id", int64(definitionID)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field options: %w", err)
	}

	return options, nil
}

// ReconcileOptions replaces the option set of a definition with the
// desired set: inputs are inserted or updated in order, and existing
// options missing from the input are deleted, or archived when a stored
// value still references them.
func (s *SimpleOptionService) ReconcileOptions(ctx context.Context, definitionID domain.ID, desired []domain.FieldOption, actor domain.ActorID) ([]domain.FieldOption, error) {
	if desired == nil {
		return nil, ErrEmptyBatch
	}

	if _, err := s.definitions.GetByID(ctx, definitionID); err != nil {
		if errors.Is(err, ErrDefinitionNotFound) {
			return nil, ErrDefinitionNotFound
		}
		return nil, fmt.Errorf("getting field definition: %w", err)
	}

	existing, err := s.options.FindAllByDefinition(ctx, definitionID)
	if err != nil {
		return nil, fmt.Errorf("loading existing options: %w", err)
	}

	existingByID := make(map[domain.ID]domain.FieldOption, len(existing))
	for _, option := range existing {
		existingByID[option.ID] = option
	}

	results := make([]domain.FieldOption, 0, len(desired))
	keep := make(map[domain.ID]struct{}, len(desired))

	for i, input := range desired {
		input.FieldDefinitionID = definitionID
		if input.SortOrder == 0 {
			input.SortOrder = i * 10
		}

		current, known := existingByID[input.ID]
		if input.IsNew() || !known {
			// an id the store does not know is stale client state;
			// recover by inserting a fresh option
			input.ID = 0
			input.StampCreated(actor)
			created, err := s.options.Create(ctx, input)
			if err != nil {
				return nil, fmt.Errorf("creating field option: %w", err)
			}
			results = append(results, created)
			keep[created.ID] = struct{}{}
			continue
		}

		current.UpdateInfo(input)
		current.StampModified(actor)
		if err := s.options.Update(ctx, current); err != nil {
			return nil, fmt.Errorf("updating field option: %w", err)
		}
		results = append(results, current)
		keep[current.ID] = struct{}{}
	}

	for _, option := range existing {
		if _, ok := keep[option.ID]; ok {
			continue
		}

		option := option
		err := deleteOrArchive(ctx,
			func(ctx context.Context) (bool, error) {
				return s.values.ExistsForOption(ctx, definitionID, option.ID)
			},
			func(ctx context.Context) error {
				option.Archive(actor)
				return s.options.Update(ctx, option)
			},
			func(ctx context.Context) error {
				return s.options.Delete(ctx, option.ID)
			},
		)
		if err != nil {
			return nil, fmt.Errorf("removing stale field option: %w", err)
		}
	}

	slog.Info("field options reconciled",
		slog.Int64("definition_id", int64(definitionID)),
		slog.Int("desired", len(desired)),
		slog.Int("existing", len(existing)))

	return results, nil
}

func (s *SimpleOptionService) ReorderOptions(ctx context.Context, ids []domain.ID, actor domain.ActorID) error {
	if len(ids) == 0 {
		return ErrEmptyReorder
	}

	options, err := s.options.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("finding field options: %w", err)
	}

	byID := make(map[domain.ID]domain.FieldOption, len(options))
	for _, option := range options {
		byID[option.ID] = option
	}

	touched := make([]domain.FieldOption, 0, len(ids))
	for i, id := range ids {
		option, ok := byID[id]
		if !ok {
			continue
		}
		option.SortOrder = i * 10
		option.StampModified(actor)
		touched = append(touched, option)
	}

	if err := s.options.UpdateMany(ctx, touched); err != nil {
		slog.Error("reordering field options", slog.String("error", err.Error()))
		return fmt.Errorf("reordering field options: %w", err)
	}

	return nil
}
