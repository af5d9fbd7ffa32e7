package usecases

import (
	"context"
	"fmt"
	"math"

	"settings-server/internal/customfields/domain"
)

// deleteOrArchive is the shared referential-integrity policy: a record
// with dependents is archived to preserve history, one without is
// removed outright. Groups, definitions, and options all delete through
// this primitive, each with its own reference predicate.
func deleteOrArchive(
	ctx context.Context,
	referenced func(context.Context) (bool, error),
	archive func(context.Context) error,
	remove func(context.Context) error,
) error {
	hasRefs, err := referenced(ctx)
	if err != nil {
		return fmt.Errorf("checking references: %w", err)
	}

	if hasRefs {
		return archive(ctx)
	}

	return remove(ctx)
}

// GroupBucket pairs a field group with the items assigned to it.
type GroupBucket[T any] struct {
	Group domain.FieldGroup
	Items []T
}

// generalGroup is the synthetic catch-all bucket for ungrouped items.
// Its max sort order keeps it last in any ordering.
func generalGroup(entityType string) domain.FieldGroup {
	return domain.FieldGroup{
		ID:          0,
		EntityType:  entityType,
		Name:        "General",
		DisplayName: "General",
		SortOrder:   math.MaxInt32,
		IsActive:    true,
	}
}

// bucketByGroup distributes items over the given groups by their group
// id. Items without a group, or whose group is missing from the active
// set, land in the synthetic General bucket, which is appended only
// when non-empty. With dropEmpty set, empty real buckets are removed
// too.
func bucketByGroup[T any](
	entityType string,
	groups []domain.FieldGroup,
	items []T,
	groupIDOf func(T) *domain.ID,
	dropEmpty bool,
) []GroupBucket[T] {
	buckets := make([]GroupBucket[T], len(groups))
	indexByID := make(map[domain.ID]int, len(groups))
	for i, group := range groups {
		buckets[i] = GroupBucket[T]{Group: group, Items: []T{}}
		indexByID[group.ID] = i
	}

	general := GroupBucket[T]{Group: generalGroup(entityType), Items: []T{}}

	for _, item := range items {
		groupID := groupIDOf(item)
		if groupID != nil {
			if i, ok := indexByID[*groupID]; ok {
				buckets[i].Items = append(buckets[i].Items, item)
				continue
			}
		}
		general.Items = append(general.Items, item)
	}

	if len(general.Items) > 0 {
		buckets = append(buckets, general)
	}

	if !dropEmpty {
		return buckets
	}

	result := buckets[:0]
	for _, bucket := range buckets {
		if len(bucket.Items) > 0 {
			result = append(result, bucket)
		}
	}

	return result
}
