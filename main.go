package main

import (
	"context"
	"encoding/gob"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Gabytass/tesisgabyss/mailer"
	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/routes"
	"github.com/Gabytass/tesisgabyss/store"
)

func main() {
	log.Println("✅ Iniciando aplicación...")

	// Load environment variables
	_ = godotenv.Load()

	ctx := context.Background()

	// Firestore is optional: without it the app serves the local backups.
	var productosRemote, usuariosRemote store.RemoteCollection
	client, err := store.NewFirestoreClient(ctx)
	if err != nil {
		log.Printf("⚠️ Firebase no disponible, modo solo local: %v", err)
	} else {
		productosRemote = store.NewFirestoreCollection(client, store.ColeccionProductos)
		usuariosRemote = store.NewFirestoreCollection(client, store.ColeccionUsuarios)
		if store.Ping(ctx, client) {
			log.Println("✅ Conexión con Firebase verificada")
		} else {
			log.Println("⚠️ Firebase no responde, se usará el respaldo local mientras tanto")
		}
	}

	local := store.LocalFromEnv()
	catalog := store.NewCatalog(productosRemote, local)
	usuarios := store.NewUsuarios(usuariosRemote, local)

	// Gin setup
	r := gin.Default()

	// AR models can be big
	r.MaxMultipartMemory = 100 << 20 // 100MB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie sessions hold the login and the cart
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET debe estar definido")
	}
	gob.Register([]models.ItemCarrito{})
	r.Use(sessions.Sessions("tesisgabyss", cookie.NewStore([]byte(secret))))

	routes.SetupRoutes(r, catalog, usuarios, mailer.FromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Servidor escuchando en el puerto %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ No se pudo iniciar el servidor: %v", err)
	}
}
