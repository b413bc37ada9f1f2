package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/mailer"
	"github.com/Gabytass/tesisgabyss/store"
)

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin
// route groups.
func SetupRoutes(r *gin.Engine, catalog *store.Catalog, usuarios *store.Usuarios, m *mailer.Mailer) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, usuarios, m)

	// Catalog, AR viewer and cart (session-protected)
	SetupUserRoutes(r, catalog)

	// Admin routes (session + admin rol)
	SetupAdminRoutes(r, catalog, usuarios)
}
