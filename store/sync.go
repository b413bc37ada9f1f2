package store

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Syncer pushes the local backup files into Firestore. This is the one path
// where local wins: existing remote documents are overwritten with the local
// fields, the opposite of the read-time reconciliation. Run as a one-shot
// batch process, never from request handlers.
type Syncer struct {
	Productos RemoteCollection
	Usuarios  RemoteCollection
	Local     *LocalStore
}

func NewSyncer(productos, usuarios RemoteCollection, local *LocalStore) *Syncer {
	return &Syncer{Productos: productos, Usuarios: usuarios, Local: local}
}

// SyncProductos uploads every local product: created when missing remotely,
// updated with the local fields when present.
func (s *Syncer) SyncProductos(ctx context.Context) error {
	if s.Productos == nil {
		return fmt.Errorf("firebase no disponible, no se puede sincronizar productos")
	}

	productos := s.Local.LoadProductos()
	if len(productos) == 0 {
		log.Println("⚠️ No hay productos locales para sincronizar.")
		return nil
	}

	for _, p := range productos {
		_, err := s.Productos.Get(ctx, p.ID)
		switch {
		case errors.Is(err, ErrNotFound):
			if err := s.Productos.Set(ctx, p.ID, p.Map()); err != nil {
				return err
			}
			log.Printf("⬆️ Producto subido a Firebase: %s", p.Nombre)
		case err != nil:
			return err
		default:
			if err := s.Productos.Update(ctx, p.ID, p.Map()); err != nil {
				return err
			}
			log.Printf("🔄 Producto actualizado en Firebase: %s", p.Nombre)
		}
	}
	return nil
}

// SyncUsuarios uploads every local user keyed by correo; records without a
// correo are skipped.
func (s *Syncer) SyncUsuarios(ctx context.Context) error {
	if s.Usuarios == nil {
		return fmt.Errorf("firebase no disponible, no se puede sincronizar usuarios")
	}

	usuarios := s.Local.LoadUsuarios()
	if len(usuarios) == 0 {
		log.Println("⚠️ No hay usuarios locales para sincronizar.")
		return nil
	}

	for _, u := range usuarios {
		if u.Correo == "" {
			continue
		}
		_, err := s.Usuarios.Get(ctx, u.Correo)
		switch {
		case errors.Is(err, ErrNotFound):
			if err := s.Usuarios.Set(ctx, u.Correo, u.Map()); err != nil {
				return err
			}
			log.Printf("⬆️ Usuario subido a Firebase: %s", u.Correo)
		case err != nil:
			return err
		default:
			if err := s.Usuarios.Update(ctx, u.Correo, u.Map()); err != nil {
				return err
			}
			log.Printf("🔄 Usuario actualizado en Firebase: %s", u.Correo)
		}
	}
	return nil
}
