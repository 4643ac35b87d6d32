package geriatrics

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

// Register adds every geriatrics calculator to the registry.
func Register(r *registry.Registry) error {
	return r.Register(Charlson{})
}

type Handler struct {
	dispatcher *registry.Dispatcher
}

func NewHandler(dispatcher *registry.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/"+ScoreCharlson, h.CalculateCharlson)
}

func (h *Handler) CalculateCharlson(c echo.Context) error {
	var req CharlsonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return scores.Respond(c, h.dispatcher, ScoreCharlson, req.params())
}
