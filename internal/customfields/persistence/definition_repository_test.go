package persistence

import (
	"context"
	"testing"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/infra/sql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDefinitionRepository(t *testing.T) *SimpleDefinitionRepository {
	t.Helper()
	orm, err := sql.NewMemoryORM()
	require.NoError(t, err)

	repo, err := NewDefinitionRepository(orm)
	require.NoError(t, err)
	return repo
}

func TestSimpleDefinitionRepository_CreatePreservesFlags(t *testing.T) {
	repo := newTestDefinitionRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.FieldDefinition{
		EntityType: "customer",
		Name:       "internal_score",
		FieldType:  domain.FieldTypeNumber,
		IsActive:   false,
		IsVisible:  false,
	})
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.False(t, found.IsVisible)

	active, err := repo.FindActiveByEntityType(ctx, "customer")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSimpleDefinitionRepository_FindActiveByEntityType(t *testing.T) {
	repo := newTestDefinitionRepository(t)
	ctx := context.Background()

	seeds := []domain.FieldDefinition{
		{EntityType: "customer", Name: "second", FieldType: domain.FieldTypeText, SortOrder: 20, IsActive: true, IsVisible: true},
		{EntityType: "customer", Name: "first", FieldType: domain.FieldTypeText, SortOrder: 10, IsActive: true, IsVisible: true},
		{EntityType: "customer", Name: "archived", FieldType: domain.FieldTypeText, SortOrder: 5, IsActive: false, IsVisible: true},
		{EntityType: "supplier", Name: "other", FieldType: domain.FieldTypeText, SortOrder: 1, IsActive: true, IsVisible: true},
	}
	for _, seed := range seeds {
		_, err := repo.Create(ctx, seed)
		require.NoError(t, err)
	}

	definitions, err := repo.FindActiveByEntityType(ctx, "CUSTOMER")
	require.NoError(t, err)
	require.Len(t, definitions, 2)
	assert.Equal(t, "first", definitions[0].Name)
	assert.Equal(t, "second", definitions[1].Name)
}
