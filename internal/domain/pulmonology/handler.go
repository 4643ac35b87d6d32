package pulmonology

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every pulmonology calculator to the registry.
func Register(r *registry.Registry) error {
	calculators := []registry.Calculator{
		Curb65{},
		AAO2Gradient{},
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
	api.POST("/"+ScoreCurb65, h.CalculateCurb65)
	api.POST("/"+ScoreAAO2Gradient, h.CalculateAAO2Gradient)
}

func (h *Handler) CalculateCurb65(c echo.Context) error {
	var req Curb65Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreCurb65, req.params())
}

func (h *Handler) CalculateAAO2Gradient(c echo.Context) error {
	var req AAO2GradientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreAAO2Gradient, req.params())
}
