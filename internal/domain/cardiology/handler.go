package cardiology

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every cardiology calculator to the registry.
func Register(r *registry.Registry) error {
	calculators := []registry.Calculator{
		CorrectedQTInterval{},
		Cha2ds2Vasc{},
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
	api.POST("/"+ScoreCorrectedQT, h.CalculateCorrectedQT)
	api.POST("/"+ScoreCha2ds2Vasc, h.CalculateCha2ds2Vasc)
}

func (h *Handler) CalculateCorrectedQT(c echo.Context) error {
	var req CorrectedQTRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreCorrectedQT, req.params())
}

func (h *Handler) CalculateCha2ds2Vasc(c echo.Context) error {
	var req Cha2ds2VascRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreCha2ds2Vasc, req.params())
}
