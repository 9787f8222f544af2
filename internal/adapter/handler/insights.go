package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	insightsUsecase "github.com/minhtran-dev/sales-insights/internal/usecase/insights"
)

// Insights handles the AI-generated narrative endpoints. These always answer
// 200: the usecase substitutes fallback copy for any failure.
type Insights struct {
	service insightsUsecase.Service
	logger  *zap.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(service insightsUsecase.Service, logger *zap.Logger) *Insights {
	return &Insights{
		service: service,
		logger:  logger,
	}
}

// VolumeVsConversion handles GET /insights/volume-vs-conversion
// @Summary      Narrative on interaction volume vs conversion
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  insight.VolumeConversionInsight
// @Router       /insights/volume-vs-conversion [get]
func (h *Insights) VolumeVsConversion(c echo.Context) error {
	out := h.service.VolumeVsConversion(c.Request().Context())
	return HandleSuccess(h.logger, c, out)
}

// PainPoints handles GET /insights/pain-points
// @Summary      Narrative on dominant pain-point themes
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  insight.PainPointsInsight
// @Router       /insights/pain-points [get]
func (h *Insights) PainPoints(c echo.Context) error {
	out := h.service.PainPoints(c.Request().Context())
	return HandleSuccess(h.logger, c, out)
}

// ClientPerception handles GET /insights/client-perception
// @Summary      Narrative on how clients perceive the product
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  insight.ClientPerceptionInsight
// @Router       /insights/client-perception [get]
func (h *Insights) ClientPerception(c echo.Context) error {
	out := h.service.ClientPerception(c.Request().Context())
	return HandleSuccess(h.logger, c, out)
}

// ClientSolutions handles GET /insights/client-solutions
// @Summary      Suggested solution angles for recent clients
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  insight.ClientSolutionsInsight
// @Router       /insights/client-solutions [get]
func (h *Insights) ClientSolutions(c echo.Context) error {
	out := h.service.ClientSolutions(c.Request().Context())
	return HandleSuccess(h.logger, c, out)
}

// Timeline handles GET /insights/timeline
// @Summary      Narrative on the monthly conversion trend
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  insight.TimelineInsight
// @Router       /insights/timeline [get]
func (h *Insights) Timeline(c echo.Context) error {
	out := h.service.Timeline(c.Request().Context())
	return HandleSuccess(h.logger, c, out)
}
