package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urban-monkey/storefront/internal/service"
)

type GalleryHandler struct {
	Svc *service.GalleryService
}

func (h *GalleryHandler) List(c echo.Context) error {
	var limit int64
	if s := c.QueryParam("limit"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return badRequest(c, "invalid limit")
		}
		limit = v
	}

	images, err := h.Svc.List(c.Request().Context(), limit)
	if err != nil {
		return fail(c, "Failed to fetch gallery images", err)
	}
	return c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) Create(c echo.Context) error {
	var in service.GalleryInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	img, err := h.Svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, "Failed to add gallery image", err)
	}
	return c.JSON(http.StatusCreated, img)
}
