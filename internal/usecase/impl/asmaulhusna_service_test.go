package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	mockRepo "muslimhub/internal/mocks/repository"
	mockSvc "muslimhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testNames() []entity.AsmaulHusnaName {
	return []entity.AsmaulHusnaName{
		{ID: 1, Transliteration: "Ar-Rahman"},
		{ID: 2, Transliteration: "Ar-Rahim"},
		{ID: 3, Transliteration: "Al-Malik"},
	}
}

func TestAsmaulHusnaService_Names_CacheHit(t *testing.T) {
	cacheMock := mockRepo.NewMockContentCache(t)
	providerMock := mockSvc.NewMockAsmaulHusnaProvider(t)
	svc := NewAsmaulHusnaService(cacheMock, providerMock, slog.Default())

	cacheMock.EXPECT().GetJSON(mock.Anything, "asmaul_husna", mock.Anything, 7*24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*[]entity.AsmaulHusnaName) = testNames()
		}).Return(nil)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestAsmaulHusnaService_Names_MissFetchesAndCaches(t *testing.T) {
	cacheMock := mockRepo.NewMockContentCache(t)
	providerMock := mockSvc.NewMockAsmaulHusnaProvider(t)
	svc := NewAsmaulHusnaService(cacheMock, providerMock, slog.Default())

	cacheMock.EXPECT().GetJSON(mock.Anything, "asmaul_husna", mock.Anything, 7*24*time.Hour).
		Return(repository.ErrCacheMiss)
	providerMock.EXPECT().Names(mock.Anything).Return(testNames(), nil)
	cacheMock.EXPECT().PutJSON(mock.Anything, "asmaul_husna", mock.Anything).Return(nil)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ar-Rahman", names[0].Transliteration)
}

func TestAsmaulHusnaService_Names_FetchFailureServesStale(t *testing.T) {
	cacheMock := mockRepo.NewMockContentCache(t)
	providerMock := mockSvc.NewMockAsmaulHusnaProvider(t)
	svc := NewAsmaulHusnaService(cacheMock, providerMock, slog.Default())

	cacheMock.EXPECT().GetJSON(mock.Anything, "asmaul_husna", mock.Anything, 7*24*time.Hour).
		Return(repository.ErrCacheMiss)
	providerMock.EXPECT().Names(mock.Anything).Return(nil, errors.New("connection refused"))
	cacheMock.EXPECT().GetStaleJSON(mock.Anything, "asmaul_husna", mock.Anything).
		Run(func(_ context.Context, _ string, dest interface{}) {
			*dest.(*[]entity.AsmaulHusnaName) = testNames()
		}).Return(nil)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestAsmaulHusnaService_Names_FallsBackToPackagedSubset(t *testing.T) {
	cacheMock := mockRepo.NewMockContentCache(t)
	providerMock := mockSvc.NewMockAsmaulHusnaProvider(t)
	svc := NewAsmaulHusnaService(cacheMock, providerMock, slog.Default())

	cacheMock.EXPECT().GetJSON(mock.Anything, "asmaul_husna", mock.Anything, 7*24*time.Hour).
		Return(repository.ErrCacheMiss)
	providerMock.EXPECT().Names(mock.Anything).Return(nil, errors.New("connection refused"))
	cacheMock.EXPECT().GetStaleJSON(mock.Anything, "asmaul_husna", mock.Anything).
		Return(repository.ErrCacheMiss)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "Ar-Rahman", names[0].Transliteration)
	assert.Equal(t, "Yang Maha Pengasih", names[0].TranslationID)
}

func TestAsmaulHusnaService_NameOfDay_IsStableForADay(t *testing.T) {
	cacheMock := mockRepo.NewMockContentCache(t)
	providerMock := mockSvc.NewMockAsmaulHusnaProvider(t)
	svc := NewAsmaulHusnaService(cacheMock, providerMock, slog.Default()).(*asmaulHusnaService)

	// 2023-03-16 is year day 75; 75 % 3 == 0.
	svc.now = func() time.Time { return time.Date(2023, 3, 16, 10, 0, 0, 0, time.UTC) }

	cacheMock.EXPECT().GetJSON(mock.Anything, "asmaul_husna", mock.Anything, 7*24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*[]entity.AsmaulHusnaName) = testNames()
		}).Return(nil).Times(2)

	first, err := svc.NameOfDay(context.Background())
	require.NoError(t, err)
	second, err := svc.NameOfDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, testNames()[75%3].ID, first.ID)
}
