package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/imagery_catalog/internal/config"
	"github.com/shenikar/imagery_catalog/internal/models"
	"github.com/shenikar/imagery_catalog/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	imageryService service.ImageryService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(imageryService service.ImageryService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		imageryService: imageryService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// bindAreaQuery разбирает и проверяет параметры lat, lon, radius_km.
// При ошибке отвечает 422 и возвращает false.
func (h *Handler) bindAreaQuery(c *gin.Context, log *logrus.Entry) (models.AreaQuery, bool) {
	var input AreaQueryRequest

	// gin привязывает пустое значение как 0, поэтому "lat=" отклоняем явно
	for _, key := range []string{"lat", "lon", "radius_km"} {
		if value, ok := c.GetQuery(key); ok && strings.TrimSpace(value) == "" {
			log.WithField("param", key).Warn("Empty query parameter")
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: fmt.Sprintf("query parameter %s must not be empty", key)})
			return models.AreaQuery{}, false
		}
	}

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query parameters")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid query parameters: " + err.Error()})
		return models.AreaQuery{}, false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return models.AreaQuery{}, false
	}

	return RequestToAreaQuery(input, h.cfg.DefaultRadiusKm), true
}

// @Summary Search captures based on a location point
// @Description Get captures located within radius_km of the given point, in dataset order.
// @Tags Imagery
// @Produce json
// @Param lat query number true "Latitude of the location point"
// @Param lon query number true "Longitude of the location point"
// @Param radius_km query number false "Radius in kilometers to filter results" default(50)
// @Success 200 {array} CaptureResponse
// @Failure 422 {object} ErrorResponse "Missing or invalid query parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /search [get]
func (h *Handler) searchCaptures(c *gin.Context) {
	log := h.logger.WithField("method", "searchCaptures")

	query, ok := h.bindAreaQuery(c, log)
	if !ok {
		return
	}

	captures, err := h.imageryService.SearchCaptures(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).Error("Failed to search captures in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCaptureResponses(captures))
}

// @Summary Query captures from the archive
// @Description Get archive captures within radius_km of the given point as a GeoJSON FeatureCollection. Coordinates are [lon, lat].
// @Tags Imagery
// @Produce json
// @Param lat query number true "Latitude of the location point"
// @Param lon query number true "Longitude of the location point"
// @Param radius_km query number false "Radius in kilometers to filter results" default(50)
// @Success 200 {object} FeatureCollectionResponse
// @Failure 422 {object} ErrorResponse "Missing or invalid query parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /archive [get]
func (h *Handler) queryArchive(c *gin.Context) {
	log := h.logger.WithField("method", "queryArchive")

	query, ok := h.bindAreaQuery(c, log)
	if !ok {
		return
	}

	collection, err := h.imageryService.QueryArchive(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).Error("Failed to query archive in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToFeatureCollectionResponse(collection))
}

// @Summary Get future capture opportunities
// @Description Get predicted captures within radius_km of the given point, in dataset order.
// @Tags Imagery
// @Produce json
// @Param lat query number true "Latitude of the location point"
// @Param lon query number true "Longitude of the location point"
// @Param radius_km query number false "Radius in kilometers to filter results" default(50)
// @Success 200 {array} OpportunityResponse
// @Failure 422 {object} ErrorResponse "Missing or invalid query parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /opportunities [get]
func (h *Handler) findOpportunities(c *gin.Context) {
	log := h.logger.WithField("method", "findOpportunities")

	query, ok := h.bindAreaQuery(c, log)
	if !ok {
		return
	}

	opportunities, err := h.imageryService.FindOpportunities(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).Error("Failed to find opportunities in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToOpportunityResponses(opportunities))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
