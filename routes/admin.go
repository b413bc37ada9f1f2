package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Gabytass/tesisgabyss/controllers/product"
	usercontroller "github.com/Gabytass/tesisgabyss/controllers/user"
	"github.com/Gabytass/tesisgabyss/middleware"
	"github.com/Gabytass/tesisgabyss/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a session
// with the admin rol.
func SetupAdminRoutes(r *gin.Engine, catalog *store.Catalog, usuarios *store.Usuarios) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.LoginRequired, middleware.AdminRequired)
	{
		// ─────────── Gestión de productos ───────────
		productAdmin := adminGroup.Group("/productos")
		{
			productAdmin.GET("", productcontroller.GetProductos(catalog))
			productAdmin.POST("", productcontroller.CreateProducto(catalog))
			productAdmin.PUT("/:id", productcontroller.UpdateProducto(catalog))
			productAdmin.DELETE("/:id", productcontroller.DeleteProducto(catalog))
			productAdmin.POST("/import-excel", productcontroller.ImportProductosExcel(catalog))
			productAdmin.GET("/export-excel", productcontroller.ExportProductosExcel(catalog))
		}

		// ─────────── Gestión de usuarios ───────────
		userAdmin := adminGroup.Group("/usuarios")
		{
			userAdmin.GET("", usercontroller.GetAllUsuarios(usuarios))
			userAdmin.DELETE("/:correo", usercontroller.DeleteUsuario(usuarios))
		}
	}
}
