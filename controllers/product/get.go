package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/store"
)

// GetProductoByID returns a single product.
// URL param: /productos/:id
func GetProductoByID(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere el ID del producto"})
			return
		}

		producto, ok := catalog.GetProducto(c.Request.Context(), id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		c.JSON(http.StatusOK, producto)
	}
}
