package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/imagery_catalog/pkg/metrics"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Поиск по радиусу
	api.GET("/search", h.searchCaptures)
	api.GET("/archive", h.queryArchive)
	api.GET("/opportunities", h.findOpportunities)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// NewRouter собирает gin.Engine с middleware, метриками и Swagger UI.
// Маршруты доступны в корне (их использует веб-клиент) и под /api/v1.
func NewRouter(h *Handler, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(log), metrics.Middleware())

	h.RegisterRoutes(router.Group("/"))
	h.RegisterRoutes(router.Group("/api/v1"))

	router.GET("/metrics", metrics.Handler())

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
