package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/store"
)

// GetProductos returns the reconciled catalog, optionally filtered. The merge
// order (cloud first, then local-only) is the display order and is never
// re-sorted here.
func GetProductos(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		minPrecioStr := c.Query("min_precio")
		maxPrecioStr := c.Query("max_precio")

		var minPrecio, maxPrecio float64
		var hasMin, hasMax bool
		if minPrecioStr != "" {
			mp, err := strconv.ParseFloat(minPrecioStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "min_precio inválido"})
				return
			}
			minPrecio, hasMin = mp, true
		}
		if maxPrecioStr != "" {
			mp, err := strconv.ParseFloat(maxPrecioStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "max_precio inválido"})
				return
			}
			maxPrecio, hasMax = mp, true
		}

		productos := catalog.ListProductos(c.Request.Context())

		filtered := make([]models.Producto, 0, len(productos))
		for _, p := range productos {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Nombre), search) &&
				!strings.Contains(strings.ToLower(p.Descripcion), search) {
				continue
			}
			if hasMin && p.Precio < minPrecio {
				continue
			}
			if hasMax && p.Precio > maxPrecio {
				continue
			}
			filtered = append(filtered, p)
		}

		c.JSON(http.StatusOK, filtered)
	}
}
