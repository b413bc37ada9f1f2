package store

import (
	"context"
	"testing"

	"github.com/Gabytass/tesisgabyss/models"
)

func TestListProductosMergesCloudFirst(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.seed("1", map[string]interface{}{"id": "1", "nombre": "A", "precio": float64(10)})

	local := tempLocal(t)
	if err := local.SaveProductos([]models.Producto{
		{ID: "1", Nombre: "STALE"},
		{ID: "2", Nombre: "B", Precio: 5},
	}); err != nil {
		t.Fatal(err)
	}

	catalog := NewCatalog(remote, local)
	got := catalog.ListProductos(ctx)

	if len(got) != 2 {
		t.Fatalf("esperaba 2 productos, hay %d: %+v", len(got), got)
	}
	if got[0].ID != "1" || got[0].Nombre != "A" || got[0].Precio != 10 {
		t.Errorf("la nube debe ganar para el id 1, quedó %+v", got[0])
	}
	if got[1].ID != "2" || got[1].Nombre != "B" || got[1].Precio != 5 {
		t.Errorf("el producto solo-local debe ir al final, quedó %+v", got[1])
	}
}

func TestListProductosNoDuplicates(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.seed("x", map[string]interface{}{"id": "x", "nombre": "Uno", "precio": float64(1)})
	remote.seed("y", map[string]interface{}{"id": "y", "nombre": "Dos", "precio": float64(2)})

	local := tempLocal(t)
	if err := local.SaveProductos([]models.Producto{
		{ID: "y", Nombre: "Dos viejo"},
		{ID: "z", Nombre: "Tres", Precio: 3},
	}); err != nil {
		t.Fatal(err)
	}

	got := NewCatalog(remote, local).ListProductos(ctx)

	seen := map[string]int{}
	for _, p := range got {
		seen[p.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %s aparece %d veces en la vista combinada", id, n)
		}
	}
	wantOrder := []string{"x", "y", "z"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("orden[%d] = %s, want %s (nube primero, locales al final)", i, got[i].ID, id)
		}
	}
}

func TestListProductosRemoteDownFallsBackToLocal(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.caida = true

	local := tempLocal(t)
	respaldo := []models.Producto{{ID: "1", Nombre: "Local", Precio: 4}}
	if err := local.SaveProductos(respaldo); err != nil {
		t.Fatal(err)
	}

	got := NewCatalog(remote, local).ListProductos(ctx)
	if len(got) != 1 || got[0].Nombre != "Local" {
		t.Errorf("con Firebase caído debe servir el respaldo local, dio %+v", got)
	}
}

func TestListProductosNilRemote(t *testing.T) {
	ctx := context.Background()

	local := tempLocal(t)
	if err := local.SaveProductos([]models.Producto{{ID: "1", Nombre: "Solo local"}}); err != nil {
		t.Fatal(err)
	}

	got := NewCatalog(nil, local).ListProductos(ctx)
	if len(got) != 1 || got[0].Nombre != "Solo local" {
		t.Errorf("sin remoto configurado debe servir lo local, dio %+v", got)
	}
}

func TestListProductosRefreshesBackup(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.seed("1", map[string]interface{}{"id": "1", "nombre": "Nube", "precio": float64(9)})

	local := tempLocal(t)
	catalog := NewCatalog(remote, local)
	catalog.ListProductos(ctx)

	respaldo := local.LoadProductos()
	if len(respaldo) != 1 || respaldo[0].Nombre != "Nube" {
		t.Errorf("el respaldo local debe refrescarse tras leer la nube, quedó %+v", respaldo)
	}
}

func TestSaveProductoSynced(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	local := tempLocal(t)
	catalog := NewCatalog(remote, local)

	p := models.Producto{ID: "p1", Nombre: "Nuevo", Precio: 15}
	if got := catalog.SaveProducto(ctx, p); got != EscrituraSincronizada {
		t.Fatalf("SaveProducto = %v, want EscrituraSincronizada", got)
	}
	if len(remote.sets) != 1 || remote.sets[0] != "p1" {
		t.Errorf("debe replicar a Firestore, sets = %v", remote.sets)
	}
	if productos := local.LoadProductos(); len(productos) != 1 {
		t.Errorf("debe persistir localmente primero, archivo = %+v", productos)
	}
}

func TestSaveProductoRemoteDownIsPartial(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.caida = true
	local := tempLocal(t)
	catalog := NewCatalog(remote, local)

	got := catalog.SaveProducto(ctx, models.Producto{ID: "p1", Nombre: "Nuevo"})
	if got != EscrituraLocal {
		t.Fatalf("con Firebase caído el guardado es parcial, dio %v", got)
	}
	if got.Sincronizado() {
		t.Error("EscrituraLocal no debe reportarse como sincronizada")
	}
	if productos := local.LoadProductos(); len(productos) != 1 {
		t.Errorf("la escritura debe sobrevivir la caída del backend, archivo = %+v", productos)
	}
}

func TestSaveProductoUpsertsByID(t *testing.T) {
	ctx := context.Background()

	local := tempLocal(t)
	catalog := NewCatalog(nil, local)

	catalog.SaveProducto(ctx, models.Producto{ID: "p1", Nombre: "V1", Precio: 1})
	catalog.SaveProducto(ctx, models.Producto{ID: "p1", Nombre: "V2", Precio: 2})

	productos := local.LoadProductos()
	if len(productos) != 1 || productos[0].Nombre != "V2" {
		t.Errorf("guardar dos veces el mismo id debe reemplazar, archivo = %+v", productos)
	}
}

func TestDeleteProducto(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.seed("p1", map[string]interface{}{"id": "p1", "nombre": "X"})
	local := tempLocal(t)
	if err := local.SaveProductos([]models.Producto{{ID: "p1", Nombre: "X"}}); err != nil {
		t.Fatal(err)
	}

	catalog := NewCatalog(remote, local)
	if got := catalog.DeleteProducto(ctx, "p1"); got != EscrituraSincronizada {
		t.Fatalf("DeleteProducto = %v, want EscrituraSincronizada", got)
	}
	if len(local.LoadProductos()) != 0 {
		t.Error("el producto debe desaparecer del respaldo local")
	}
	if len(remote.deletes) != 1 {
		t.Errorf("el producto debe borrarse de Firestore, deletes = %v", remote.deletes)
	}

	// Firestore accepts deletes of missing documents, so a healthy remote
	// must not turn a nonexistent id into a reported success.
	if got := catalog.DeleteProducto(ctx, "no-existe"); got != EscrituraFallida {
		t.Errorf("borrar un id inexistente = %v, want EscrituraFallida", got)
	}
	if len(remote.deletes) != 1 {
		t.Errorf("un id inexistente no debe generar un Delete remoto, deletes = %v", remote.deletes)
	}
}

func TestDeleteProductoSoloRemoto(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.seed("nube-1", map[string]interface{}{"id": "nube-1", "nombre": "Solo nube"})
	catalog := NewCatalog(remote, tempLocal(t))

	// Absent locally but present in Firestore: still a real removal.
	if got := catalog.DeleteProducto(ctx, "nube-1"); got != EscrituraSincronizada {
		t.Fatalf("DeleteProducto = %v, want EscrituraSincronizada", got)
	}
	if len(remote.deletes) != 1 || remote.deletes[0] != "nube-1" {
		t.Errorf("el producto debe borrarse de Firestore, deletes = %v", remote.deletes)
	}
}

func TestGetProductoPrefersRemote(t *testing.T) {
	ctx := context.Background()

	remote := newFakeCollection()
	remote.seed("p1", map[string]interface{}{"id": "p1", "nombre": "Nube", "precio": float64(10)})
	local := tempLocal(t)
	if err := local.SaveProductos([]models.Producto{{ID: "p1", Nombre: "Viejo"}}); err != nil {
		t.Fatal(err)
	}

	catalog := NewCatalog(remote, local)
	p, ok := catalog.GetProducto(ctx, "p1")
	if !ok || p.Nombre != "Nube" {
		t.Errorf("GetProducto debe preferir el remoto, dio %+v ok=%v", p, ok)
	}

	remote.caida = true
	p, ok = catalog.GetProducto(ctx, "p1")
	if !ok || p.Nombre != "Viejo" {
		t.Errorf("con Firebase caído debe caer al local, dio %+v ok=%v", p, ok)
	}

	if _, ok := catalog.GetProducto(ctx, "nada"); ok {
		t.Error("un id inexistente no debe resolverse")
	}
}
