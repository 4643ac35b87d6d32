// Package scores is the transport layer over the calculation registry: the
// catalog endpoints, the generic dispatch endpoint, and the mapping from the
// dispatch error taxonomy to HTTP responses.
package scores

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcalc/medcalc/internal/registry"
)

// Handler serves the score catalog and the generic calculation endpoint.
type Handler struct {
	dispatcher *registry.Dispatcher
}

func NewHandler(dispatcher *registry.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/scores", h.ListScores)
	api.GET("/scores/:score_id", h.GetScoreMetadata)
	api.GET("/scores/:score_id/validate", h.ValidateScore)
	api.GET("/categories", h.ListCategories)
	api.POST("/:score_id/calculate", h.CalculateGeneric)
}

// ScoreListResponse is the envelope for catalog listings.
type ScoreListResponse struct {
	Scores []registry.Metadata `json:"scores"`
	Total  int                 `json:"total"`
}

// ListScores returns every registered score, optionally filtered by
// ?category= or ?search=.
func (h *Handler) ListScores(c echo.Context) error {
	reg := h.dispatcher.Registry()

	var list []registry.Metadata
	switch {
	case c.QueryParam("search") != "":
		list = reg.Search(c.QueryParam("search"))
	case c.QueryParam("category") != "":
		list = reg.ByCategory(c.QueryParam("category"))
	default:
		list = reg.All()
	}
	if list == nil {
		list = []registry.Metadata{}
	}
	return c.JSON(http.StatusOK, ScoreListResponse{Scores: list, Total: len(list)})
}

// GetScoreMetadata returns the catalog entry for one score.
func (h *Handler) GetScoreMetadata(c echo.Context) error {
	id := c.Param("score_id")
	calc, ok := h.dispatcher.Registry().Resolve(id)
	if !ok {
		return respondUnknownScore(c, id)
	}
	return c.JSON(http.StatusOK, calc.Meta())
}

// ValidateScore reports whether a calculator is available for the score.
func (h *Handler) ValidateScore(c echo.Context) error {
	id := c.Param("score_id")
	return c.JSON(http.StatusOK, map[string]any{
		"score_id":  id,
		"available": h.dispatcher.Registry().Exists(id),
	})
}

// ListCategories returns the distinct medical specialties in the catalog.
func (h *Handler) ListCategories(c echo.Context) error {
	categories := h.dispatcher.Registry().Categories()
	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
		"total":      len(categories),
	})
}

// CalculateGeneric dispatches any registered score from a raw parameter bag.
// The body is the parameter object itself; per-score typed endpoints are thin
// conveniences over this same path.
func (h *Handler) CalculateGeneric(c echo.Context) error {
	var params registry.Params
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")
	}
	if params == nil {
		params = registry.Params{}
	}
	return Respond(c, h.dispatcher, c.Param("score_id"), params)
}

// Respond runs one calculation and writes either the result or the mapped
// error body. Domain handlers share it so that every route flows through the
// same dispatcher and error taxonomy.
func Respond(c echo.Context, d *registry.Dispatcher, id string, params registry.Params) error {
	result, err := d.Calculate(c.Request().Context(), id, params)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RespondError maps a dispatch error to its HTTP response: 422 for client
// faults (unknown score, invalid parameters), 500 for computation failures.
func RespondError(c echo.Context, err error) error {
	var derr *registry.DispatchError
	if !errors.As(err, &derr) {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	status := http.StatusUnprocessableEntity
	if derr.Kind == registry.KindComputationFailure {
		status = http.StatusInternalServerError
	}

	return c.JSON(status, map[string]any{
		"error":   string(derr.Kind),
		"message": derr.Message,
		"details": derr.Details,
	})
}

func respondUnknownScore(c echo.Context, id string) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]any{
		"error":   string(registry.KindUnknownScore),
		"message": "score \"" + id + "\" is not registered",
		"details": map[string]any{"score_id": id},
	})
}
