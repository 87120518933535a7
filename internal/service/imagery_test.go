package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/imagery_catalog/internal/models"
	"github.com/shenikar/imagery_catalog/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestImageryService - вспомогательная функция для создания сервиса с моками
func newTestImageryService(t *testing.T) (ImageryService, *mocks.MockImageryRepository, *mocks.MockQueryCache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockImageryRepository(ctrl)
	cacheMock := mocks.NewMockQueryCache(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewImageryService(repoMock, cacheMock, logger), repoMock, cacheMock
}

// expectCacheMiss настраивает промах кеша и успешную запись результата
func expectCacheMiss(cacheMock *mocks.MockQueryCache, key string) {
	cacheMock.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil).Times(1)
}

func testCaptures() []*models.Capture {
	date := time.Date(2023, 11, 1, 10, 15, 30, 0, time.UTC)
	return []*models.Capture{
		{ID: "CAP12346", Location: models.Location{Lat: -34.6037, Lon: -58.3816}, CaptureDate: date, Resolution: "5m"},
		{ID: "CAP12347", Location: models.Location{Lat: -34.6094, Lon: -58.3838}, CaptureDate: date, Resolution: "10m"},
		{ID: "CAP12348", Location: models.Location{Lat: 40.7128, Lon: -74.0060}, CaptureDate: date, Resolution: "20m"},
		{ID: "CAP12349", Location: models.Location{Lat: 40.73061, Lon: -73.935242}, CaptureDate: date, Resolution: "15m"},
	}
}

func captureIDs(captures []*models.Capture) []string {
	ids := make([]string, 0, len(captures))
	for _, c := range captures {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestSearchCaptures_BuenosAires(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()
	q := models.AreaQuery{Lat: -34.6037, Lon: -58.3816, RadiusKm: 5}

	expectCacheMiss(cacheMock, "search:-34.6037:-58.3816:5")
	repoMock.EXPECT().Captures(ctx).Return(testCaptures(), nil).Times(1)

	captures, err := service.SearchCaptures(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, []string{"CAP12346", "CAP12347"}, captureIDs(captures))
}

func TestSearchCaptures_WholeDatasetInOrder(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()

	expectCacheMiss(cacheMock, "search:0:0:20000")
	repoMock.EXPECT().Captures(ctx).Return(testCaptures(), nil).Times(1)

	captures, err := service.SearchCaptures(ctx, models.AreaQuery{RadiusKm: 20000})

	require.NoError(t, err)
	assert.Equal(t, captureIDs(testCaptures()), captureIDs(captures))
}

func TestSearchCaptures_NothingInRange(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()

	expectCacheMiss(cacheMock, "search:10:10:0")
	repoMock.EXPECT().Captures(ctx).Return(testCaptures(), nil).Times(1)

	captures, err := service.SearchCaptures(ctx, models.AreaQuery{Lat: 10, Lon: 10, RadiusKm: 0})

	require.NoError(t, err)
	assert.NotNil(t, captures)
	assert.Empty(t, captures)
}

func TestSearchCaptures_FromCache(t *testing.T) {
	service, _, cacheMock := newTestImageryService(t)
	ctx := context.Background()
	cached := testCaptures()[:1]

	// Репозиторий не должен вызываться
	cacheMock.EXPECT().
		Get(ctx, "search:1:2:3", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*dst.(*[]*models.Capture) = cached
			return true, nil
		}).Times(1)

	captures, err := service.SearchCaptures(ctx, models.AreaQuery{Lat: 1, Lon: 2, RadiusKm: 3})

	require.NoError(t, err)
	assert.Equal(t, cached, captures)
}

func TestSearchCaptures_CacheErrorsAreIgnored(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down")).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)
	repoMock.EXPECT().Captures(ctx).Return(testCaptures(), nil).Times(1)

	captures, err := service.SearchCaptures(ctx, models.AreaQuery{Lat: 40.7128, Lon: -74.0060, RadiusKm: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"CAP12348"}, captureIDs(captures))
}

func TestSearchCaptures_RepositoryError(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()
	repoErr := errors.New("dataset unavailable")

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().Captures(ctx).Return(nil, repoErr).Times(1)

	captures, err := service.SearchCaptures(ctx, models.AreaQuery{RadiusKm: 50})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, captures)
}

func TestQueryArchive_NewYork(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()
	features := make([]*models.ArchiveFeature, 0)
	for _, c := range testCaptures() {
		features = append(features, models.FeatureFromCapture(c))
	}

	expectCacheMiss(cacheMock, "archive:40.7128:-74.006:1")
	repoMock.EXPECT().ArchiveFeatures(ctx).Return(features, nil).Times(1)

	collection, err := service.QueryArchive(ctx, models.AreaQuery{Lat: 40.7128, Lon: -74.0060, RadiusKm: 1})

	require.NoError(t, err)
	assert.Equal(t, models.FeatureCollectionType, collection.Type)
	require.Len(t, collection.Features, 1)
	assert.Equal(t, "CAP12348", collection.Features[0].Properties.CaptureID)
}

func TestQueryArchive_Empty(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()

	expectCacheMiss(cacheMock, "archive:0:0:50")
	repoMock.EXPECT().ArchiveFeatures(ctx).Return([]*models.ArchiveFeature{}, nil).Times(1)

	collection, err := service.QueryArchive(ctx, models.AreaQuery{RadiusKm: 50})

	require.NoError(t, err)
	assert.Equal(t, models.FeatureCollectionType, collection.Type)
	assert.NotNil(t, collection.Features)
	assert.Empty(t, collection.Features)
}

func TestQueryArchive_RepositoryError(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().ArchiveFeatures(ctx).Return(nil, errors.New("boom")).Times(1)

	collection, err := service.QueryArchive(ctx, models.AreaQuery{RadiusKm: 50})

	assert.Error(t, err)
	assert.Nil(t, collection)
}

func TestFindOpportunities_ExactPoint(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()
	opportunities := []*models.Opportunity{
		{ID: "OP12346", Confidence: models.ConfidenceHigh, Location: &models.Location{Lat: -34.6037, Lon: -58.3816}},
		{ID: "OP12347", Confidence: models.ConfidenceMedium, Location: &models.Location{Lat: -34.6094, Lon: -58.3838}},
		{ID: "OP12348", Confidence: models.ConfidenceHigh, Location: &models.Location{Lat: 40.7128, Lon: -74.0060}},
	}

	expectCacheMiss(cacheMock, "opportunities:-34.6037:-58.3816:0.1")
	repoMock.EXPECT().Opportunities(ctx).Return(opportunities, nil).Times(1)

	got, err := service.FindOpportunities(ctx, models.AreaQuery{Lat: -34.6037, Lon: -58.3816, RadiusKm: 0.1})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "OP12346", got[0].ID)
}

func TestFindOpportunities_MissingLocationTreatedAsOrigin(t *testing.T) {
	service, repoMock, cacheMock := newTestImageryService(t)
	ctx := context.Background()
	opportunities := []*models.Opportunity{
		{ID: "OP-NOLOC", Confidence: models.ConfidenceLow},
		{ID: "OP12348", Confidence: models.ConfidenceHigh, Location: &models.Location{Lat: 40.7128, Lon: -74.0060}},
	}

	expectCacheMiss(cacheMock, "opportunities:0.01:0.01:5")
	repoMock.EXPECT().Opportunities(ctx).Return(opportunities, nil).Times(1)

	got, err := service.FindOpportunities(ctx, models.AreaQuery{Lat: 0.01, Lon: 0.01, RadiusKm: 5})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "OP-NOLOC", got[0].ID)
	assert.Nil(t, got[0].Location)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "search:-34.6037:-58.3816:50", cacheKey(opSearch, models.AreaQuery{Lat: -34.6037, Lon: -58.3816, RadiusKm: 50}))
	assert.Equal(t, "archive:0:0:0.5", cacheKey(opArchive, models.AreaQuery{RadiusKm: 0.5}))
}
