// Command createadmin bootstraps an administrator account: hashed clave,
// written to the local backup and, when Firebase is reachable, to Firestore.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/Gabytass/tesisgabyss/auth"
	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/store"
)

func main() {
	nombre := flag.String("nombre", "", "nombre completo del administrador")
	correo := flag.String("correo", "", "correo del administrador")
	clave := flag.String("clave", "", "clave en texto plano (se guarda el hash)")
	flag.Parse()

	if *nombre == "" || *correo == "" || *clave == "" {
		log.Fatal("❌ Uso: createadmin -nombre ... -correo ... -clave ...")
	}

	_ = godotenv.Load()

	ctx := context.Background()

	var remote store.RemoteCollection
	client, err := store.NewFirestoreClient(ctx)
	if err != nil {
		log.Printf("⚠️ Firebase no disponible, el administrador quedará solo en el respaldo local: %v", err)
	} else {
		defer client.Close()
		remote = store.NewFirestoreCollection(client, store.ColeccionUsuarios)
	}

	usuarios := store.NewUsuarios(remote, store.LocalFromEnv())

	if usuarios.Existe(ctx, *correo) {
		log.Fatalf("❌ El correo %s ya está registrado", *correo)
	}

	hash, err := auth.HashClave(*clave)
	if err != nil {
		log.Fatalf("❌ No se pudo generar el hash: %v", err)
	}

	admin := models.Usuario{
		Nombre: *nombre,
		Correo: *correo,
		Clave:  hash,
		Rol:    models.RolAdmin,
	}

	switch usuarios.SaveUsuario(ctx, admin) {
	case store.EscrituraFallida:
		log.Fatal("❌ No se pudo guardar el administrador")
	case store.EscrituraLocal:
		log.Println("⚠️ Administrador creado solo en el respaldo local")
	default:
		log.Println("✅ Administrador creado correctamente")
	}
}
