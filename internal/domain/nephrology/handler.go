package nephrology

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every nephrology calculator to the registry.
func Register(r *registry.Registry) error {
	calculators := []registry.Calculator{
		CKDEpi2021{},
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
	api.POST("/"+ScoreCKDEpi2021, h.CalculateCKDEpi2021)
}

func (h *Handler) CalculateCKDEpi2021(c echo.Context) error {
	var req CKDEpi2021Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreCKDEpi2021, req.params())
}
