package persistence

import (
	"context"
	"testing"

	"settings-server/internal/infra/sql"
	"settings-server/internal/referencedata/domain"
	"settings-server/internal/referencedata/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeneralCodeRepository(t *testing.T) *SimpleGeneralCodeRepository {
	t.Helper()
	orm, err := sql.NewMemoryORM()
	require.NoError(t, err)

	repo, err := NewGeneralCodeRepository(orm)
	require.NoError(t, err)
	return repo
}

func seedGeneralCodes(t *testing.T, repo *SimpleGeneralCodeRepository) {
	t.Helper()
	ctx := context.Background()
	seeds := []domain.GeneralCode{
		{CodeType: 1, CodeNumber: 1, LanguageCode: "en", ShortDescription: "Open", IsActive: true},
		{CodeType: 1, CodeNumber: 2, LanguageCode: "en", ShortDescription: "Closed", IsActive: true},
		{CodeType: 1, CodeNumber: 1, LanguageCode: "nl", ShortDescription: "Open", IsActive: true},
		{CodeType: 2, CodeNumber: 1, LanguageCode: "en", ShortDescription: "Red", IsActive: true},
	}
	for _, seed := range seeds {
		_, err := repo.Create(ctx, seed)
		require.NoError(t, err)
	}
}

func TestNewGeneralCodeRepository(t *testing.T) {
	repo := newTestGeneralCodeRepository(t)
	assert.NotNil(t, repo)
}

func TestSimpleGeneralCodeRepository_GetByNaturalKey(t *testing.T) {
	repo := newTestGeneralCodeRepository(t)
	seedGeneralCodes(t, repo)
	ctx := context.Background()

	code, err := repo.GetByNaturalKey(ctx, 1, 2, "en")
	require.NoError(t, err)
	assert.Equal(t, "Closed", code.ShortDescription)

	// language is part of the key
	code, err = repo.GetByNaturalKey(ctx, 1, 1, "nl")
	require.NoError(t, err)
	assert.Equal(t, "nl", code.LanguageCode)

	_, err = repo.GetByNaturalKey(ctx, 9, 9, "en")
	assert.ErrorIs(t, err, usecases.ErrGeneralCodeNotFound)
}

func TestSimpleGeneralCodeRepository_FindAllFilters(t *testing.T) {
	repo := newTestGeneralCodeRepository(t)
	seedGeneralCodes(t, repo)
	ctx := context.Background()

	codeType := 1
	codes, total, err := repo.FindAll(ctx, usecases.GeneralCodeFilter{CodeType: &codeType}, usecases.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, codes, 3)

	codes, total, err = repo.FindAll(ctx,
		usecases.GeneralCodeFilter{CodeType: &codeType, LanguageCode: "en"},
		usecases.Pagination{Limit: 10},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	// ordered by type then number
	require.Len(t, codes, 2)
	assert.Equal(t, 1, codes[0].CodeNumber)
	assert.Equal(t, 2, codes[1].CodeNumber)
}

func TestSimpleGeneralCodeRepository_FindAllPagination(t *testing.T) {
	repo := newTestGeneralCodeRepository(t)
	seedGeneralCodes(t, repo)

	codes, total, err := repo.FindAll(context.Background(), usecases.GeneralCodeFilter{}, usecases.Pagination{Limit: 3, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, codes, 1)
}

func TestSimpleGeneralCodeRepository_Exists(t *testing.T) {
	repo := newTestGeneralCodeRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.GeneralCode{CodeType: 1, CodeNumber: 1, LanguageCode: "EN", IsActive: true})
	require.NoError(t, err)

	// language matches case-insensitively
	exists, err := repo.Exists(ctx, 1, 1, "en", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 1, 1, "en", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.Exists(ctx, 1, 2, "en", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}
