package hematology

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every hematology calculator to the registry.
func Register(r *registry.Registry) error {
	calculators := []registry.Calculator{
		ANC{},
		ALC{},
		MABL{},
	}
	for _, calc := range calculators {
		if err := r.Register(calc); err != nil {
			return err
		}
	}
	return nil
}

type Handler struct {
	dispatcher *registry.Dispatcher
}

func NewHandler(dispatcher *registry.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/"+ScoreANC, h.CalculateANC)
	api.POST("/"+ScoreALC, h.CalculateALC)
	api.POST("/"+ScoreMABL, h.CalculateMABL)
}

func (h *Handler) CalculateANC(c echo.Context) error {
	var req ANCRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreANC, req.params())
}

func (h *Handler) CalculateALC(c echo.Context) error {
	var req ALCRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreALC, req.params())
}

func (h *Handler) CalculateMABL(c echo.Context) error {
	var req MABLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreMABL, req.params())
}
