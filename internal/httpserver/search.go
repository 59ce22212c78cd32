package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urban-monkey/storefront/internal/models"
)

const defaultSearchSize = 20

type Searcher interface {
	Search(ctx context.Context, query string, size int) ([]models.Product, error)
}

type SearchHandler struct {
	Searcher Searcher // nil when the search index is not configured
}

func (h *SearchHandler) Search(c echo.Context) error {
	if h.Searcher == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: "search is not available"})
	}

	q := c.QueryParam("q")
	if q == "" {
		return badRequest(c, "q is required")
	}

	size := defaultSearchSize
	if s := c.QueryParam("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}

	products, err := h.Searcher.Search(c.Request().Context(), q, size)
	if err != nil {
		return fail(c, "Failed to search products", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}
