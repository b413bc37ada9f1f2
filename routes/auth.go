package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/auth"
	"github.com/Gabytass/tesisgabyss/mailer"
	"github.com/Gabytass/tesisgabyss/store"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, usuarios *store.Usuarios, m *mailer.Mailer) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(usuarios))
		authGroup.GET("/logout", auth.Logout())
		authGroup.POST("/registro", auth.Registro(usuarios))

		// Password recovery: token by mail, then reset with the token.
		authGroup.POST("/recuperar", auth.Recuperar(usuarios, m))
		authGroup.POST("/restablecer", auth.Restablecer(usuarios))
	}
}
