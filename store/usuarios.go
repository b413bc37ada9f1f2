package store

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Gabytass/tesisgabyss/models"
)

// Fuente identifies which store a user record was read from, so credential
// upgrades write back to the right place.
type Fuente int

const (
	FuenteRemota Fuente = iota
	FuenteLocal
)

// Usuarios reconciles the usuarios collection. Unlike productos there is no
// merge on reads: once Firestore holds any accounts it is ground truth and the
// local file is ignored. Remote may be nil.
type Usuarios struct {
	Remote RemoteCollection
	Local  *LocalStore
}

func NewUsuarios(remote RemoteCollection, local *LocalStore) *Usuarios {
	return &Usuarios{Remote: remote, Local: local}
}

// ListUsuarios returns the complete user set: the remote collection when it
// yields any records, the local backup otherwise.
func (s *Usuarios) ListUsuarios(ctx context.Context) []models.Usuario {
	if s.Remote != nil {
		docs, err := s.Remote.All(ctx)
		if err != nil {
			log.Printf("⚠️ Firebase no disponible, usando usuarios locales: %v", err)
		} else if len(docs) > 0 {
			usuarios := make([]models.Usuario, 0, len(docs))
			for _, doc := range docs {
				u := models.NormalizeUsuario(doc.Data)
				if u.Correo == "" {
					u.Correo = doc.ID
				}
				usuarios = append(usuarios, u)
			}
			return usuarios
		}
	}
	return s.Local.LoadUsuarios()
}

// GetUsuario resolves one account by correo, remote first, and reports which
// store answered.
func (s *Usuarios) GetUsuario(ctx context.Context, correo string) (models.Usuario, Fuente, bool) {
	correo = strings.ToLower(strings.TrimSpace(correo))
	if correo == "" {
		return models.Usuario{}, FuenteLocal, false
	}

	if s.Remote != nil {
		data, err := s.Remote.Get(ctx, correo)
		if err == nil {
			u := models.NormalizeUsuario(data)
			if u.Correo == "" {
				u.Correo = correo
			}
			return u, FuenteRemota, true
		}
		if !errors.Is(err, ErrNotFound) {
			log.Printf("⚠️ Firebase no disponible al buscar usuario %s: %v", correo, err)
		}
	}

	for _, u := range s.Local.LoadUsuarios() {
		if u.Correo == correo {
			return u, FuenteLocal, true
		}
	}
	return models.Usuario{}, FuenteLocal, false
}

// Existe checks both stores, which is what registration needs for the
// uniqueness rule even while one side is stale.
func (s *Usuarios) Existe(ctx context.Context, correo string) bool {
	correo = strings.ToLower(strings.TrimSpace(correo))
	if s.Remote != nil {
		if _, err := s.Remote.Get(ctx, correo); err == nil {
			return true
		}
	}
	for _, u := range s.Local.LoadUsuarios() {
		if u.Correo == correo {
			return true
		}
	}
	return false
}

// SaveUsuario upserts an account under the productos write policy: local
// first, then best-effort replication.
func (s *Usuarios) SaveUsuario(ctx context.Context, usuario models.Usuario) ResultadoEscritura {
	usuario.Correo = strings.ToLower(strings.TrimSpace(usuario.Correo))

	usuarios := s.Local.LoadUsuarios()
	replaced := false
	for i := range usuarios {
		if usuarios[i].Correo == usuario.Correo {
			usuarios[i] = usuario
			replaced = true
			break
		}
	}
	if !replaced {
		usuarios = append(usuarios, usuario)
	}
	if err := s.Local.SaveUsuarios(usuarios); err != nil {
		log.Printf("❌ No se pudo guardar usuarios localmente: %v", err)
		return EscrituraFallida
	}

	if s.Remote == nil {
		return EscrituraLocal
	}
	if err := s.Remote.Set(ctx, usuario.Correo, usuario.Map()); err != nil {
		log.Printf("⚠️ Usuario %s guardado solo localmente: %v", usuario.Correo, err)
		return EscrituraLocal
	}
	return EscrituraSincronizada
}

// DeleteUsuario removes an account from both stores, best-effort on the
// remote side.
func (s *Usuarios) DeleteUsuario(ctx context.Context, correo string) ResultadoEscritura {
	correo = strings.ToLower(strings.TrimSpace(correo))

	usuarios := s.Local.LoadUsuarios()
	kept := usuarios[:0]
	found := false
	for _, u := range usuarios {
		if u.Correo == correo {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if found {
		if err := s.Local.SaveUsuarios(kept); err != nil {
			log.Printf("❌ No se pudo guardar usuarios localmente: %v", err)
			return EscrituraFallida
		}
	}

	if s.Remote == nil {
		if !found {
			return EscrituraFallida
		}
		return EscrituraLocal
	}
	// Firestore deletes of missing documents succeed, so a correo absent
	// from the local file is looked up remotely first; only removing a
	// document that actually exists counts as a synchronized delete.
	if !found {
		if _, err := s.Remote.Get(ctx, correo); err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Printf("⚠️ Firebase no disponible al borrar usuario %s: %v", correo, err)
			}
			return EscrituraFallida
		}
	}
	if err := s.Remote.Delete(ctx, correo); err != nil {
		log.Printf("⚠️ Usuario %s eliminado solo localmente: %v", correo, err)
		if !found {
			return EscrituraFallida
		}
		return EscrituraLocal
	}
	return EscrituraSincronizada
}

// ActualizarClave persists a new credential to the store the record was read
// from. Used for the plaintext-to-bcrypt upgrade after a successful login and
// for password resets; callers treat failures as non-fatal.
func (s *Usuarios) ActualizarClave(ctx context.Context, correo, clave string, fuente Fuente) error {
	correo = strings.ToLower(strings.TrimSpace(correo))

	if fuente == FuenteRemota && s.Remote != nil {
		return s.Remote.Update(ctx, correo, map[string]interface{}{"clave": clave})
	}

	usuarios := s.Local.LoadUsuarios()
	for i := range usuarios {
		if usuarios[i].Correo == correo {
			usuarios[i].Clave = clave
			return s.Local.SaveUsuarios(usuarios)
		}
	}
	return ErrNotFound
}
