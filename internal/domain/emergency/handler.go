package emergency

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every emergency medicine calculator to the registry.
func Register(r *registry.Registry) error {
	calculators := []registry.Calculator{
		RoxIndex{},
		RuleOfNines{},
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
	api.POST("/"+ScoreRoxIndex, h.CalculateRoxIndex)
	api.POST("/"+ScoreRuleOfNines, h.CalculateRuleOfNines)
}

func (h *Handler) CalculateRoxIndex(c echo.Context) error {
	var req RoxIndexRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreRoxIndex, req.params())
}

func (h *Handler) CalculateRuleOfNines(c echo.Context) error {
	var req RuleOfNinesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreRuleOfNines, req.params())
}
