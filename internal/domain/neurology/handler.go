package neurology

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every neurology calculator to the registry.
func Register(r *registry.Registry) error {
	calculators := []registry.Calculator{
		Abcd2{},
		CerebralPerfusionPressure{},
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
	api.POST("/"+ScoreAbcd2, h.CalculateAbcd2)
	api.POST("/"+ScoreCerebralPerfusionPressure, h.CalculateCPP)
}

func (h *Handler) CalculateAbcd2(c echo.Context) error {
	var req Abcd2Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreAbcd2, req.params())
}

func (h *Handler) CalculateCPP(c echo.Context) error {
	var req CerebralPerfusionPressureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreCerebralPerfusionPressure, req.params())
}
