package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urban-monkey/storefront/internal/auth"
	"github.com/urban-monkey/storefront/internal/service"
)

type UserHandler struct {
	Svc *service.UserService
}

func (h *UserHandler) Sync(c echo.Context) error {
	var in service.SyncInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	user, created, err := h.Svc.Sync(c.Request().Context(), in)
	if err != nil {
		return fail(c, "Failed to sync user", err)
	}

	status := http.StatusOK
	msg := "User synced successfully"
	if created {
		status = http.StatusCreated
		msg = "User created successfully"
	}
	return c.JSON(status, echo.Map{"message": msg, "userId": user.ID.Hex()})
}

func (h *UserHandler) GetCart(c echo.Context) error {
	sub, err := auth.Subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	}

	items, err := h.Svc.GetCart(c.Request().Context(), sub)
	if err != nil {
		return fail(c, "Failed to fetch cart", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) AddToCart(c echo.Context) error {
	sub, err := auth.Subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	}

	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.ProductID == "" {
		return badRequest(c, "productId is required")
	}

	items, err := h.Svc.AddToCart(c.Request().Context(), sub, req.ProductID, req.Quantity)
	if err != nil {
		return fail(c, "Failed to add item to cart", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) SetQuantity(c echo.Context) error {
	sub, err := auth.Subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	items, err := h.Svc.SetQuantity(c.Request().Context(), sub, c.Param("productId"), req.Quantity)
	if err != nil {
		return fail(c, "Failed to update cart", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) RemoveFromCart(c echo.Context) error {
	sub, err := auth.Subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	}

	items, err := h.Svc.RemoveFromCart(c.Request().Context(), sub, c.Param("productId"))
	if err != nil {
		return fail(c, "Failed to remove item from cart", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) ClearCart(c echo.Context) error {
	sub, err := auth.Subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	}

	if err := h.Svc.ClearCart(c.Request().Context(), sub); err != nil {
		return fail(c, "Failed to clear cart", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Cart cleared successfully"})
}
