package usercontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/store"
)

// GET /admin/usuarios
// Claves never leave the server, hashed or not.
func GetAllUsuarios(usuarios *store.Usuarios) gin.HandlerFunc {
	return func(c *gin.Context) {
		lista := usuarios.ListUsuarios(c.Request.Context())

		publicos := make([]map[string]interface{}, 0, len(lista))
		for _, u := range lista {
			publicos = append(publicos, u.Publico())
		}
		c.JSON(http.StatusOK, publicos)
	}
}

// DELETE /admin/usuarios/:correo
func DeleteUsuario(usuarios *store.Usuarios) gin.HandlerFunc {
	return func(c *gin.Context) {
		correo := strings.ToLower(strings.TrimSpace(c.Param("correo")))
		if correo == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere el correo"})
			return
		}

		// An admin deleting their own session's account would strand the
		// session; refuse it. Sessions store the correo lowercased, so the
		// comparison happens on the normalized form.
		if sesionCorreo, _ := c.Get("correo"); sesionCorreo == correo {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No puedes eliminar tu propia cuenta"})
			return
		}

		resultado := usuarios.DeleteUsuario(c.Request.Context(), correo)
		if resultado == store.EscrituraFallida {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mensaje":      "Usuario eliminado correctamente",
			"sincronizado": resultado.Sincronizado(),
		})
	}
}
