package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/urban-monkey/storefront/internal/catalog"
	"github.com/urban-monkey/storefront/internal/service"
	"github.com/urban-monkey/storefront/internal/telemetry"
)

type ProductHandler struct {
	Svc     *service.CatalogService
	Metrics *telemetry.Metrics
}

func (h *ProductHandler) List(c echo.Context) error {
	params, err := parseFilterParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.Svc.List(c.Request().Context(), params)
	if err != nil {
		return fail(c, "Failed to fetch products", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id := c.Param("id")

	prod, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, "Failed to fetch product", err)
	}

	if h.Metrics != nil {
		h.Metrics.ProductsViewed.Add(c.Request().Context(), 1,
			metric.WithAttributes(attribute.String("product_id", id)))
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var in service.ProductInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	prod, err := h.Svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, "Failed to add product", err)
	}
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHandler) Update(c echo.Context) error {
	var in service.ProductInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	prod, err := h.Svc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return fail(c, "Failed to update product", err)
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, "Failed to delete product", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted"})
}

func parseFilterParams(c echo.Context) (catalog.Params, error) {
	p := catalog.Params{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
	}

	var err error
	if p.MinPrice, err = parseOptionalFloat(c.QueryParam("minPrice")); err != nil {
		return p, err
	}
	if p.MaxPrice, err = parseOptionalFloat(c.QueryParam("maxPrice")); err != nil {
		return p, err
	}
	if p.MinRating, err = parseOptionalFloat(c.QueryParam("minRating")); err != nil {
		return p, err
	}
	return p, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
