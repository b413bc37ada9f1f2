package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/store"
)

// DeleteProducto removes a product from both stores, best-effort on the
// remote side.
func DeleteProducto(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere el ID del producto"})
			return
		}

		resultado := catalog.DeleteProducto(c.Request.Context(), id)
		if resultado == store.EscrituraFallida {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mensaje":      "Producto eliminado correctamente",
			"sincronizado": resultado.Sincronizado(),
		})
	}
}
