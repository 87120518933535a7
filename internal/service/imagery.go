//go:generate mockgen -source=imagery.go -destination=mocks/mock_imagery.go -package=mocks

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shenikar/imagery_catalog/internal/models"
	"github.com/shenikar/imagery_catalog/pkg/geo"
	"github.com/shenikar/imagery_catalog/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const (
	opSearch        = "search"
	opArchive       = "archive"
	opOpportunities = "opportunities"
)

func cacheKey(op string, q models.AreaQuery) string {
	return op + ":" +
		strconv.FormatFloat(q.Lat, 'f', -1, 64) + ":" +
		strconv.FormatFloat(q.Lon, 'f', -1, 64) + ":" +
		strconv.FormatFloat(q.RadiusKm, 'f', -1, 64)
}

// ImageryRepository определяет контракт доступа к неизменяемым наборам данных
type ImageryRepository interface {
	Captures(ctx context.Context) ([]*models.Capture, error)
	ArchiveFeatures(ctx context.Context) ([]*models.ArchiveFeature, error)
	Opportunities(ctx context.Context) ([]*models.Opportunity, error)
}

// QueryCache определяет контракт кеша результатов запросов
type QueryCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// ImageryService определяет контракт поиска съемок, архива и прогнозов по радиусу
type ImageryService interface {
	SearchCaptures(ctx context.Context, q models.AreaQuery) ([]*models.Capture, error)
	QueryArchive(ctx context.Context, q models.AreaQuery) (*models.FeatureCollection, error)
	FindOpportunities(ctx context.Context, q models.AreaQuery) ([]*models.Opportunity, error)
}

type imageryService struct {
	repo   ImageryRepository
	cache  QueryCache
	logger *logrus.Logger
}

func NewImageryService(repo ImageryRepository, cache QueryCache, logger *logrus.Logger) ImageryService {
	return &imageryService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// SearchCaptures возвращает съемки в радиусе от точки
func (s *imageryService) SearchCaptures(ctx context.Context, q models.AreaQuery) ([]*models.Capture, error) {
	return withinRadius(ctx, s, opSearch, q, s.repo.Captures, locateCapture)
}

// QueryArchive возвращает объекты архива в радиусе от точки в виде FeatureCollection
func (s *imageryService) QueryArchive(ctx context.Context, q models.AreaQuery) (*models.FeatureCollection, error) {
	features, err := withinRadius(ctx, s, opArchive, q, s.repo.ArchiveFeatures, locateFeature)
	if err != nil {
		return nil, err
	}
	return models.NewFeatureCollection(features), nil
}

// FindOpportunities возвращает прогнозы съемок в радиусе от точки
func (s *imageryService) FindOpportunities(ctx context.Context, q models.AreaQuery) ([]*models.Opportunity, error) {
	return withinRadius(ctx, s, opOpportunities, q, s.repo.Opportunities, locateOpportunity)
}

func locateCapture(c *models.Capture) geo.Point { return c.Location.Point() }

func locateFeature(f *models.ArchiveFeature) geo.Point { return f.Location().Point() }

// прогноз без координат фильтруется как точка (0, 0)
func locateOpportunity(o *models.Opportunity) geo.Point { return o.LocationOrDefault().Point() }

// withinRadius выполняет поиск через кеш. Ошибки кеша не прерывают запрос.
func withinRadius[T any](
	ctx context.Context,
	s *imageryService,
	op string,
	q models.AreaQuery,
	load func(context.Context) ([]T, error),
	locate func(T) geo.Point,
) ([]T, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "imagery",
		"method":    op,
		"lat":       q.Lat,
		"lon":       q.Lon,
		"radius_km": q.RadiusKm,
	})

	key := cacheKey(op, q)
	var cached []T
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.WithError(err).Warn("Failed to read query result from cache")
	}
	if found {
		metrics.CacheHits.WithLabelValues(op).Inc()
		log.WithField("count", len(cached)).Debug("Query result served from cache")
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues(op).Inc()

	items, err := load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load dataset from repository")
		return nil, fmt.Errorf("service: could not load %s dataset: %w", op, err)
	}

	result := geo.Within(items, locate, q.Center(), q.RadiusKm)
	metrics.QueryMatches.WithLabelValues(op).Observe(float64(len(result)))

	if err := s.cache.Set(ctx, key, result); err != nil {
		log.WithError(err).Warn("Failed to store query result in cache")
	}

	log.WithField("count", len(result)).Info("Proximity query completed")
	return result, nil
}
