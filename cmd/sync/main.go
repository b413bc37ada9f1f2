// Command sync pushes the local productos.json and usuarios.json backups into
// Firestore in one shot. Records missing remotely are created; existing ones
// are overwritten with the local fields — on this path, and only on this path,
// local wins.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Gabytass/tesisgabyss/store"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	client, err := store.NewFirestoreClient(ctx)
	if err != nil {
		log.Fatalf("⚠️ Firebase no disponible, no se puede sincronizar: %v", err)
	}
	defer client.Close()

	syncer := store.NewSyncer(
		store.NewFirestoreCollection(client, store.ColeccionProductos),
		store.NewFirestoreCollection(client, store.ColeccionUsuarios),
		store.LocalFromEnv(),
	)

	log.Println("🔄 Sincronizando productos...")
	if err := syncer.SyncProductos(ctx); err != nil {
		log.Fatalf("❌ Falló la sincronización de productos: %v", err)
	}

	log.Println("🔄 Sincronizando usuarios...")
	if err := syncer.SyncUsuarios(ctx); err != nil {
		log.Fatalf("❌ Falló la sincronización de usuarios: %v", err)
	}

	log.Println("🎉 Sincronización terminada.")
}
