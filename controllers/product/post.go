package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/store"
)

// CreateProducto creates a product from a multipart form with an optional AR
// model upload. Persists locally even when Firebase is down; the response's
// "sincronizado" flag tells the admin which happened.
func CreateProducto(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		nombre := c.PostForm("nombre")
		descripcion := c.PostForm("descripcion")
		precioStr := c.PostForm("precio")
		imagen := c.PostForm("imagen")

		if nombre == "" || precioStr == "" || imagen == "" || descripcion == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos del formulario"})
			return
		}

		precio, err := strconv.ParseFloat(precioStr, 64)
		if err != nil || precio < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Precio inválido"})
			return
		}

		var archivoRA string
		if file, err := c.FormFile("archivo_ra"); err == nil {
			archivoRA, err = guardarModeloRA(c, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		producto := models.Producto{
			ID:          uuid.NewString(),
			Nombre:      nombre,
			Descripcion: descripcion,
			Precio:      precio,
			Imagen:      imagen,
			ArchivoRA:   archivoRA,
		}

		resultado := catalog.SaveProducto(c.Request.Context(), producto)
		if resultado == store.EscrituraFallida {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el producto"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"producto":     producto,
			"sincronizado": resultado.Sincronizado(),
		})
	}
}
