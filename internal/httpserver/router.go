package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/urban-monkey/storefront/internal/auth"
)

type Deps struct {
	Products     *ProductHandler
	Gallery      *GalleryHandler
	Users        *UserHandler
	Search       *SearchHandler
	Verifier     auth.Verifier
	AdminKeyHash []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", d.Products.List)
	products.GET("/:id", d.Products.Get)

	admin := auth.RequireAdminKey(d.AdminKeyHash)
	products.POST("", d.Products.Create, admin)
	products.PUT("/:id", d.Products.Update, admin)
	products.DELETE("/:id", d.Products.Delete, admin)

	gallery := api.Group("/gallery")
	gallery.GET("", d.Gallery.List)
	gallery.POST("", d.Gallery.Create, admin)

	api.GET("/search", d.Search.Search)

	users := api.Group("/users")
	users.POST("/sync", d.Users.Sync)

	cart := users.Group("/cart", auth.RequireBearer(d.Verifier))
	cart.GET("", d.Users.GetCart)
	cart.POST("", d.Users.AddToCart)
	cart.PUT("/:productId", d.Users.SetQuantity)
	cart.DELETE("/:productId", d.Users.RemoveFromCart)
	cart.DELETE("", d.Users.ClearCart)
}
