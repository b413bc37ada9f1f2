package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/store"
)

// UpdateProducto updates an existing product by ID. Accepts the same form
// fields as CreateProducto; absent fields keep their current value.
func UpdateProducto(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		producto, ok := catalog.GetProducto(c.Request.Context(), id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}

		if v := c.PostForm("nombre"); v != "" {
			producto.Nombre = v
		}
		if v := c.PostForm("descripcion"); v != "" {
			producto.Descripcion = v
		}
		if v := c.PostForm("imagen"); v != "" {
			producto.Imagen = v
		}
		if v := c.PostForm("precio"); v != "" {
			precio, err := strconv.ParseFloat(v, 64)
			if err != nil || precio < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Precio inválido"})
				return
			}
			producto.Precio = precio
		}

		if file, err := c.FormFile("archivo_ra"); err == nil {
			archivoRA, err := guardarModeloRA(c, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			producto.ArchivoRA = archivoRA
		}

		resultado := catalog.SaveProducto(c.Request.Context(), producto)
		if resultado == store.EscrituraFallida {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el producto"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"producto":     producto,
			"sincronizado": resultado.Sincronizado(),
		})
	}
}
