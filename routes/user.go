package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/Gabytass/tesisgabyss/controllers/cart"
	productcontroller "github.com/Gabytass/tesisgabyss/controllers/product"
	"github.com/Gabytass/tesisgabyss/middleware"
	"github.com/Gabytass/tesisgabyss/store"
)

// SetupUserRoutes registers the session-protected catalog, viewer and cart
// endpoints.
func SetupUserRoutes(r *gin.Engine, catalog *store.Catalog) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.LoginRequired)
	{
		// ──────────────── Catálogo ────────────────
		userGroup.GET("/productos", productcontroller.GetProductos(catalog))
		userGroup.GET("/productos/:id", productcontroller.GetProductoByID(catalog))

		// ──────────────── Visor RA ────────────────
		userGroup.GET("/modelos/:archivo", productcontroller.GetModeloRA())

		// ──────────────── Carrito ────────────────
		userGroup.GET("/carrito", cartcontroller.GetCarrito(catalog))
		userGroup.POST("/carrito/:producto_id", cartcontroller.AgregarAlCarrito(catalog))
		userGroup.DELETE("/carrito/:producto_id", cartcontroller.QuitarDelCarrito())
		userGroup.DELETE("/carrito", cartcontroller.VaciarCarrito())
	}
}
