package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analyticsUsecase "github.com/minhtran-dev/sales-insights/internal/usecase/analytics"
)

// Analytics handles aggregation endpoints for the dashboard
type Analytics struct {
	service analyticsUsecase.Service
	logger  *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service analyticsUsecase.Service, logger *zap.Logger) *Analytics {
	return &Analytics{
		service: service,
		logger:  logger,
	}
}

// Overview handles GET /analytics/overview
// @Summary      Dashboard overview totals
// @Description  Returns global client totals, processed counts and conversion rate
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  analytics.OverviewResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/overview [get]
func (h *Analytics) Overview(c echo.Context) error {
	out, err := h.service.GetOverview(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// ByDimension handles GET /analytics/by-dimension
// @Summary      Conversion metrics grouped by one dimension
// @Description  Groups processed clients by industry, sentiment, urgencyLevel, discoverySource or operationSize
// @Tags         Analytics
// @Produce      json
// @Param        dimension  query     string  true  "Dimension name"
// @Success      200        {array}   analytics.DimensionMetric
// @Failure      400        {object}  map[string]interface{}  "Unknown dimension"
// @Failure      500        {object}  map[string]interface{}
// @Router       /analytics/by-dimension [get]
func (h *Analytics) ByDimension(c echo.Context) error {
	dimension := c.QueryParam("dimension")
	out, err := h.service.GetMetricsByDimension(c.Request().Context(), dimension)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// ConversionAnalysis handles GET /analytics/conversion-analysis
// @Summary      Conversion metrics for every dimension at once
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  analytics.ConversionAnalysisResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/conversion-analysis [get]
func (h *Analytics) ConversionAnalysis(c echo.Context) error {
	out, err := h.service.GetConversionAnalysis(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// PainPoints handles GET /analytics/pain-points
// @Summary      Most frequent normalized pain points
// @Description  Groups pain points after whitespace/punctuation normalization, top 10 by count
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.PainPointAggregate
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/pain-points [get]
func (h *Analytics) PainPoints(c echo.Context) error {
	out, err := h.service.GetTopPainPoints(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// TechnicalRequirements handles GET /analytics/technical-requirements
// @Summary      Most frequent technical requirements
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.TechnicalRequirementAggregate
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/technical-requirements [get]
func (h *Analytics) TechnicalRequirements(c echo.Context) error {
	out, err := h.service.GetTopTechnicalRequirements(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// VolumeVsConversion handles GET /analytics/volume-vs-conversion
// @Summary      Conversion rate per interaction-volume bucket
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.VolumeBucket
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/volume-vs-conversion [get]
func (h *Analytics) VolumeVsConversion(c echo.Context) error {
	out, err := h.service.GetVolumeVsConversion(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// IndustriesDetailedRanking handles GET /analytics/industries-detailed-ranking
// @Summary      Per-industry conversion and volume ranking
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.IndustryRanking
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/industries-detailed-ranking [get]
func (h *Analytics) IndustriesDetailedRanking(c echo.Context) error {
	out, err := h.service.GetIndustriesDetailedRanking(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// NewIndustriesLastMonth handles GET /analytics/new-industries-last-month
// @Summary      Industries first seen in the last 30 days
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.NewIndustry
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/new-industries-last-month [get]
func (h *Analytics) NewIndustriesLastMonth(c echo.Context) error {
	out, err := h.service.GetNewIndustriesLastMonth(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// IndustriesToWatch handles GET /analytics/industries-to-watch
// @Summary      Expansion and strategy-needed industry segments
// @Description  Flags small high-conversion industries and large low-conversion ones using percentile thresholds
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  analytics.IndustriesToWatchResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/industries-to-watch [get]
func (h *Analytics) IndustriesToWatch(c echo.Context) error {
	out, err := h.service.GetIndustriesToWatch(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}

// TimelineMetrics handles GET /analytics/timeline-metrics
// @Summary      Daily meeting and closing counts
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.TimelinePoint
// @Failure      500  {object}  map[string]interface{}
// @Router       /analytics/timeline-metrics [get]
func (h *Analytics) TimelineMetrics(c echo.Context) error {
	out, err := h.service.GetTimelineMetrics(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, out)
}
