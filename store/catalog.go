package store

import (
	"context"
	"errors"
	"log"

	"github.com/Gabytass/tesisgabyss/models"
)

// ResultadoEscritura distinguishes the three outcomes of a durable write:
// replicated to Firestore, persisted only in the local backup because the
// backend was down, or not persisted anywhere.
type ResultadoEscritura int

const (
	EscrituraFallida ResultadoEscritura = iota
	EscrituraLocal
	EscrituraSincronizada
)

// Sincronizado reports whether the write reached the remote store.
func (r ResultadoEscritura) Sincronizado() bool { return r == EscrituraSincronizada }

// Catalog reconciles the productos collection across Firestore and the local
// JSON backup. Remote may be nil when the backend is not configured or failed
// to initialize; every operation branches on that explicitly.
type Catalog struct {
	Remote RemoteCollection
	Local  *LocalStore
}

func NewCatalog(remote RemoteCollection, local *LocalStore) *Catalog {
	return &Catalog{Remote: remote, Local: local}
}

// ListProductos returns the merged catalog view. Cloud is authoritative:
// cloud entries come first in stream order, then local-only entries in file
// order, one entry per id. A remote failure degrades to the local backup
// alone and never surfaces to the caller.
func (c *Catalog) ListProductos(ctx context.Context) []models.Producto {
	var cloud []models.Producto
	remoteOK := false
	if c.Remote != nil {
		docs, err := c.Remote.All(ctx)
		if err != nil {
			log.Printf("⚠️ Firebase no disponible, usando respaldo local: %v", err)
		} else {
			remoteOK = true
			for i, doc := range docs {
				p := models.NormalizeProducto(doc.Data, i)
				if doc.ID != "" {
					p.ID = doc.ID
				}
				cloud = append(cloud, p)
			}
		}
	}

	local := c.Local.LoadProductos()

	seen := make(map[string]bool, len(cloud))
	merged := make([]models.Producto, 0, len(cloud)+len(local))
	for _, p := range cloud {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		merged = append(merged, p)
	}
	for _, p := range local {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		merged = append(merged, p)
	}

	// Refresh the backup while the backend is reachable so the fallback
	// stays warm for the next outage.
	if remoteOK {
		if err := c.Local.SaveProductos(merged); err != nil {
			log.Printf("⚠️ No se pudo actualizar el respaldo local: %v", err)
		}
	}
	return merged
}

// GetProducto resolves one product, preferring the remote document and
// falling back to a scan of the merged local view.
func (c *Catalog) GetProducto(ctx context.Context, id string) (models.Producto, bool) {
	if c.Remote != nil {
		data, err := c.Remote.Get(ctx, id)
		if err == nil {
			p := models.NormalizeProducto(data, 0)
			p.ID = id
			return p, true
		}
		if !errors.Is(err, ErrNotFound) {
			log.Printf("⚠️ Firebase no disponible al buscar producto %s: %v", id, err)
		}
	}
	for _, p := range c.Local.LoadProductos() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Producto{}, false
}

// SaveProducto upserts a product: local file first so the write survives a
// backend outage, then best-effort replication to Firestore.
func (c *Catalog) SaveProducto(ctx context.Context, producto models.Producto) ResultadoEscritura {
	productos := c.Local.LoadProductos()
	replaced := false
	for i := range productos {
		if productos[i].ID == producto.ID {
			productos[i] = producto
			replaced = true
			break
		}
	}
	if !replaced {
		productos = append(productos, producto)
	}
	if err := c.Local.SaveProductos(productos); err != nil {
		log.Printf("❌ No se pudo guardar productos localmente: %v", err)
		return EscrituraFallida
	}

	if c.Remote == nil {
		return EscrituraLocal
	}
	if err := c.Remote.Set(ctx, producto.ID, producto.Map()); err != nil {
		log.Printf("⚠️ Producto %s guardado solo localmente: %v", producto.ID, err)
		return EscrituraLocal
	}
	return EscrituraSincronizada
}

// DeleteProducto removes a product from the local backup and, best-effort,
// from Firestore. Returns EscrituraFallida when the id exists nowhere.
func (c *Catalog) DeleteProducto(ctx context.Context, id string) ResultadoEscritura {
	productos := c.Local.LoadProductos()
	kept := productos[:0]
	found := false
	for _, p := range productos {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if found {
		if err := c.Local.SaveProductos(kept); err != nil {
			log.Printf("❌ No se pudo guardar productos localmente: %v", err)
			return EscrituraFallida
		}
	}

	if c.Remote == nil {
		if !found {
			return EscrituraFallida
		}
		return EscrituraLocal
	}
	// Firestore deletes of missing documents succeed, so an id absent from
	// the local file is looked up remotely first; only removing a document
	// that actually exists counts as a synchronized delete.
	if !found {
		if _, err := c.Remote.Get(ctx, id); err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Printf("⚠️ Firebase no disponible al borrar producto %s: %v", id, err)
			}
			return EscrituraFallida
		}
	}
	if err := c.Remote.Delete(ctx, id); err != nil {
		log.Printf("⚠️ Producto %s eliminado solo localmente: %v", id, err)
		if !found {
			return EscrituraFallida
		}
		return EscrituraLocal
	}
	return EscrituraSincronizada
}
