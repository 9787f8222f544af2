package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/minhtran-dev/sales-insights/docs"
	"github.com/minhtran-dev/sales-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	analyticsHandler *Analytics
	insightsHandler  *Insights
	clientsHandler   *Clients
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analyticsHandler *Analytics, insightsHandler *Insights, clientsHandler *Clients) *Router {
	return &Router{
		cfg:              cfg,
		analyticsHandler: analyticsHandler,
		insightsHandler:  insightsHandler,
		clientsHandler:   clientsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnalyticsRoutes(v1)
	rt.setupInsightsRoutes(v1)
	rt.setupClientsRoutes(v1)
}

// setupAnalyticsRoutes configures aggregation routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analyticsGroup := g.Group("/analytics")

	analyticsGroup.GET("/overview", rt.analyticsHandler.Overview)
	analyticsGroup.GET("/by-dimension", rt.analyticsHandler.ByDimension)
	analyticsGroup.GET("/conversion-analysis", rt.analyticsHandler.ConversionAnalysis)
	analyticsGroup.GET("/pain-points", rt.analyticsHandler.PainPoints)
	analyticsGroup.GET("/technical-requirements", rt.analyticsHandler.TechnicalRequirements)
	analyticsGroup.GET("/volume-vs-conversion", rt.analyticsHandler.VolumeVsConversion)
	analyticsGroup.GET("/industries-detailed-ranking", rt.analyticsHandler.IndustriesDetailedRanking)
	analyticsGroup.GET("/new-industries-last-month", rt.analyticsHandler.NewIndustriesLastMonth)
	analyticsGroup.GET("/industries-to-watch", rt.analyticsHandler.IndustriesToWatch)
	analyticsGroup.GET("/timeline-metrics", rt.analyticsHandler.TimelineMetrics)
}

// setupInsightsRoutes configures AI narrative routes
func (rt *Router) setupInsightsRoutes(g *echo.Group) {
	insightsGroup := g.Group("/insights")

	insightsGroup.GET("/volume-vs-conversion", rt.insightsHandler.VolumeVsConversion)
	insightsGroup.GET("/pain-points", rt.insightsHandler.PainPoints)
	insightsGroup.GET("/client-perception", rt.insightsHandler.ClientPerception)
	insightsGroup.GET("/client-solutions", rt.insightsHandler.ClientSolutions)
	insightsGroup.GET("/timeline", rt.insightsHandler.Timeline)
}

// setupClientsRoutes configures client record routes
func (rt *Router) setupClientsRoutes(g *echo.Group) {
	clientsGroup := g.Group("/clients")

	clientsGroup.POST("", rt.clientsHandler.Create)
	clientsGroup.GET("", rt.clientsHandler.List)
	clientsGroup.DELETE("", rt.clientsHandler.DeleteAll)
	clientsGroup.POST("/upload-csv", rt.clientsHandler.UploadCSV)
	clientsGroup.GET("/uploads", rt.clientsHandler.ListUploads)
	clientsGroup.POST("/process-pending", rt.clientsHandler.ProcessPending)
	clientsGroup.GET("/:id", rt.clientsHandler.Get)
	clientsGroup.PATCH("/:id", rt.clientsHandler.Update)
	clientsGroup.POST("/:id/process", rt.clientsHandler.Process)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
