package cartcontroller

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/store"
)

const carritoKey = "carrito"

func carritoDeSesion(session sessions.Session) []models.ItemCarrito {
	items, _ := session.Get(carritoKey).([]models.ItemCarrito)
	return items
}

// GET /carrito
// The session only holds ids and quantities; names and prices come from the
// reconciled catalog at view time, so admin price changes show up immediately.
// Items whose product no longer exists are dropped from the response.
func GetCarrito(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		items := carritoDeSesion(session)

		productos := catalog.ListProductos(c.Request.Context())
		porID := make(map[string]models.Producto, len(productos))
		for _, p := range productos {
			porID[p.ID] = p
		}

		type lineaCarrito struct {
			Producto models.Producto `json:"producto"`
			Cantidad int             `json:"cantidad"`
			Subtotal float64         `json:"subtotal"`
		}

		lineas := make([]lineaCarrito, 0, len(items))
		var total float64
		for _, item := range items {
			p, ok := porID[item.ProductoID]
			if !ok {
				continue
			}
			subtotal := p.Precio * float64(item.Cantidad)
			total += subtotal
			lineas = append(lineas, lineaCarrito{Producto: p, Cantidad: item.Cantidad, Subtotal: subtotal})
		}

		c.JSON(http.StatusOK, gin.H{"items": lineas, "total": total})
	}
}

// POST /carrito/:producto_id
func AgregarAlCarrito(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		productoID := c.Param("producto_id")

		if _, ok := catalog.GetProducto(c.Request.Context(), productoID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El producto no existe"})
			return
		}

		session := sessions.Default(c)
		items := models.AgregarAlCarrito(carritoDeSesion(session), productoID)
		session.Set(carritoKey, items)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el carrito"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"mensaje": "Producto agregado al carrito", "items": items})
	}
}

// DELETE /carrito/:producto_id
// Removes one unit; the entry disappears at zero.
func QuitarDelCarrito() gin.HandlerFunc {
	return func(c *gin.Context) {
		productoID := c.Param("producto_id")

		session := sessions.Default(c)
		items := models.QuitarDelCarrito(carritoDeSesion(session), productoID)
		session.Set(carritoKey, items)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el carrito"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"mensaje": "Producto eliminado del carrito", "items": items})
	}
}

// DELETE /carrito
func VaciarCarrito() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		session.Delete(carritoKey)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo vaciar el carrito"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensaje": "Carrito vaciado"})
	}
}
