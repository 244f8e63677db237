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

type supplicationMocks struct {
	cache  *mockRepo.MockContentCache
	doa    *mockSvc.MockDoaProvider
	tahlil *mockSvc.MockTahlilProvider
	kisah  *mockSvc.MockKisahNabiProvider
}

func newSupplicationService(t *testing.T) (*supplicationService, supplicationMocks) {
	t.Helper()

	mocks := supplicationMocks{
		cache:  mockRepo.NewMockContentCache(t),
		doa:    mockSvc.NewMockDoaProvider(t),
		tahlil: mockSvc.NewMockTahlilProvider(t),
		kisah:  mockSvc.NewMockKisahNabiProvider(t),
	}
	svc := NewSupplicationService(mocks.cache, mocks.doa, mocks.tahlil, mocks.kisah, slog.Default()).(*supplicationService)

	return svc, mocks
}

func testDoaList() []entity.Doa {
	return []entity.Doa{
		{ID: "1", Name: "Doa Sebelum Tidur", Arabic: "بِاسْمِكَ", Translation: "Dengan nama-Mu"},
		{ID: "2", Name: "Doa Bangun Tidur", Arabic: "الْحَمْدُ لِلَّهِ", Translation: "Segala puji bagi Allah"},
	}
}

func TestSupplicationService_DoaList_CacheHit(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "doa", mock.Anything, 24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*[]entity.Doa) = testDoaList()
		}).Return(nil)

	list, err := svc.DoaList(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	// Provider never consulted on a hit.
}

func TestSupplicationService_DoaList_MissFetchesAndCaches(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "doa", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.doa.EXPECT().DoaList(mock.Anything).Return(testDoaList(), nil)
	mocks.cache.EXPECT().PutJSON(mock.Anything, "doa", mock.Anything).Return(nil)

	list, err := svc.DoaList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Doa Sebelum Tidur", list[0].Name)
}

func TestSupplicationService_DoaList_FetchFailureServesStale(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "doa", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.doa.EXPECT().DoaList(mock.Anything).Return(nil, errors.New("api down"))
	mocks.cache.EXPECT().GetStaleJSON(mock.Anything, "doa", mock.Anything).
		Run(func(_ context.Context, _ string, dest interface{}) {
			*dest.(*[]entity.Doa) = testDoaList()
		}).Return(nil)

	list, err := svc.DoaList(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSupplicationService_DoaList_NothingAvailableIsAnError(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "doa", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.doa.EXPECT().DoaList(mock.Anything).Return(nil, errors.New("api down"))
	mocks.cache.EXPECT().GetStaleJSON(mock.Anything, "doa", mock.Anything).
		Return(repository.ErrCacheMiss)

	_, err := svc.DoaList(context.Background())
	assert.Error(t, err)
}

func TestSupplicationService_DoaByID(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "doa", mock.Anything, 24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*[]entity.Doa) = testDoaList()
		}).Return(nil)

	doa, err := svc.DoaByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Doa Bangun Tidur", doa.Name)
}

func TestSupplicationService_DoaByID_NotFound(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "doa", mock.Anything, 24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*[]entity.Doa) = testDoaList()
		}).Return(nil)

	_, err := svc.DoaByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrDoaNotFound)
}

func TestSupplicationService_Tahlil_MissFetchesAndCaches(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	items := []entity.TahlilItem{
		{Number: 1, Title: "Pembukaan", Arabic: "بِسْمِ اللَّهِ"},
		{Number: 2, Title: "Surat Al-Ikhlas", Arabic: "قُلْ هُوَ اللَّهُ"},
	}

	mocks.cache.EXPECT().GetJSON(mock.Anything, "tahlil", mock.Anything, 12*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.tahlil.EXPECT().Tahlil(mock.Anything).Return(items, nil)
	mocks.cache.EXPECT().PutJSON(mock.Anything, "tahlil", mock.Anything).Return(nil)

	got, err := svc.Tahlil(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pembukaan", got[0].Title)
}

func TestSupplicationService_Tahlil_FetchFailureServesStale(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "tahlil", mock.Anything, 12*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.tahlil.EXPECT().Tahlil(mock.Anything).Return(nil, errors.New("api down"))
	mocks.cache.EXPECT().GetStaleJSON(mock.Anything, "tahlil", mock.Anything).
		Run(func(_ context.Context, _ string, dest interface{}) {
			*dest.(*[]entity.TahlilItem) = []entity.TahlilItem{{Number: 1, Title: "Pembukaan"}}
		}).Return(nil)

	got, err := svc.Tahlil(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSupplicationService_KisahNabiList_MissFetchesAndCaches(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	stories := []entity.KisahNabi{
		{Name: "Adam", Story: "Nabi pertama."},
		{Name: "Nuh", Story: "Pembuat bahtera."},
	}

	mocks.cache.EXPECT().GetJSON(mock.Anything, "kisah_nabi", mock.Anything, 12*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.kisah.EXPECT().KisahNabi(mock.Anything).Return(stories, nil)
	mocks.cache.EXPECT().PutJSON(mock.Anything, "kisah_nabi", mock.Anything).Return(nil)

	got, err := svc.KisahNabiList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Adam", got[0].Name)
}

func TestSupplicationService_KisahNabiList_CacheWriteFailureIsNonFatal(t *testing.T) {
	svc, mocks := newSupplicationService(t)

	mocks.cache.EXPECT().GetJSON(mock.Anything, "kisah_nabi", mock.Anything, 12*time.Hour).
		Return(repository.ErrCacheMiss)
	mocks.kisah.EXPECT().KisahNabi(mock.Anything).
		Return([]entity.KisahNabi{{Name: "Adam", Story: "Nabi pertama."}}, nil)
	mocks.cache.EXPECT().PutJSON(mock.Anything, "kisah_nabi", mock.Anything).Return(errors.New("store down"))

	got, err := svc.KisahNabiList(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
