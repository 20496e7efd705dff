package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/csg8/suanmingapp/internal/domain/models"
	"github.com/csg8/suanmingapp/internal/presenter"
	xhttp "github.com/csg8/suanmingapp/pkg/http"
	xlogger "github.com/csg8/suanmingapp/pkg/logger"
)

// ChartComputer is the use case behind the chart endpoints.
type ChartComputer interface {
	BaZi(ctx context.Context, m models.CalendarMoment, g models.Gender) (models.BaZiReading, error)
	ZiWei(ctx context.Context, m models.CalendarMoment, g models.Gender) (models.PalaceChart, error)
}

// ChartsEchoHandler serves the Four-Pillars, palace chart and catalog endpoints.
type ChartsEchoHandler struct {
	logger *xlogger.Logger
	charts ChartComputer
}

func NewChartsEchoHandler(logger *xlogger.Logger, charts ChartComputer) *ChartsEchoHandler {
	return &ChartsEchoHandler{logger: logger, charts: charts}
}

func (h *ChartsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/bazi", h.BaZi)
	g.POST("/bazi", h.BaZi)
	g.GET("/ziwei", h.ZiWei)
	g.POST("/ziwei", h.ZiWei)
	g.GET("/catalog", h.Catalog)
}

func (h *ChartsEchoHandler) BaZi(c echo.Context) error {
	m, g, verr := readChartRequest(c)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	r, err := h.charts.BaZi(c.Request().Context(), m, g)
	if err != nil {
		return h.chartError(c, "bazi", err)
	}
	return xhttp.SuccessResponse(c, presenter.BaZi(r))
}

func (h *ChartsEchoHandler) ZiWei(c echo.Context) error {
	m, g, verr := readChartRequest(c)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	chart, err := h.charts.ZiWei(c.Request().Context(), m, g)
	if err != nil {
		return h.chartError(c, "ziwei", err)
	}
	return xhttp.SuccessResponse(c, presenter.ZiWei(chart, m))
}

func (h *ChartsEchoHandler) Catalog(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
	return xhttp.SuccessResponse(c, presenter.Catalog())
}

func readChartRequest(c echo.Context) (models.CalendarMoment, models.Gender, []xhttp.ValidationError) {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return models.CalendarMoment{}, "", verr
	}
	g, err := models.ParseGender(req.Gender)
	if err != nil {
		return models.CalendarMoment{}, "", []xhttp.ValidationError{{
			Code:    "ERR_ONEOF",
			Field:   "Gender",
			Message: err.Error(),
		}}
	}
	return req.Moment(), g, nil
}

// chartError maps domain failures onto HTTP statuses: bad input is 400,
// a failing lunar collaborator is 502.
func (h *ChartsEchoHandler) chartError(c echo.Context, op string, err error) error {
	var appErr *xhttp.AppError
	switch {
	case errors.Is(err, models.ErrInvalidMoment), errors.Is(err, models.ErrInvalidGender):
		appErr = xhttp.NewAppError("ERR_INVALID_MOMENT", "", err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrLunarUnavailable), errors.Is(err, models.ErrInvalidLunarDate):
		h.logger.Warn(op+" lunar conversion failed", xlogger.Error(err))
		appErr = xhttp.BadGatewayError(err.Error())
	default:
		h.logger.Error(op+" usecase error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.AppErrorResponse(c, appErr.WithError(err))
}
