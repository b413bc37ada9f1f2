package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/models"
)

// LoginRequired rejects requests without a logged-in session and exposes the
// session's correo and rol to downstream handlers.
func LoginRequired(c *gin.Context) {
	session := sessions.Default(c)
	correo, _ := session.Get("correo").(string)
	if correo == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Debe iniciar sesión"})
		c.Abort()
		return
	}
	c.Set("correo", correo)
	rol, _ := session.Get("rol").(string)
	c.Set("rol", rol)
	c.Next()
}

// AdminRequired composes on top of LoginRequired: the session must also carry
// the admin rol.
func AdminRequired(c *gin.Context) {
	rol, _ := c.Get("rol")
	if rol != models.RolAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para acceder a esta página"})
		c.Abort()
		return
	}
	c.Next()
}
