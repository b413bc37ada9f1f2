package store

import (
	"bytes"
	"encoding/json"
	"log"
	"os"

	"github.com/Gabytass/tesisgabyss/models"
)

// LocalStore is the on-disk JSON fallback: one array file for productos and
// one for usuarios. Reads are forgiving — a missing or corrupt file is an
// empty collection, never an error — because the local side must stay usable
// when everything else is broken.
type LocalStore struct {
	ProductosPath string
	UsuariosPath  string
}

func NewLocalStore(productosPath, usuariosPath string) *LocalStore {
	return &LocalStore{ProductosPath: productosPath, UsuariosPath: usuariosPath}
}

// LocalFromEnv builds the local store from PRODUCTOS_JSON/USUARIOS_JSON,
// defaulting to the backup files next to the binary.
func LocalFromEnv() *LocalStore {
	productos := os.Getenv("PRODUCTOS_JSON")
	if productos == "" {
		productos = "productos.json"
	}
	usuarios := os.Getenv("USUARIOS_JSON")
	if usuarios == "" {
		usuarios = "usuarios.json"
	}
	return NewLocalStore(productos, usuarios)
}

// LoadProductos reads and normalizes the local product backup.
func (l *LocalStore) LoadProductos() []models.Producto {
	raws := readArray(l.ProductosPath)
	productos := make([]models.Producto, 0, len(raws))
	for i, raw := range raws {
		productos = append(productos, models.NormalizeProducto(raw, i))
	}
	return productos
}

// SaveProductos writes the full product collection. The error is the caller's
// signal of a failed write; nothing panics past this call.
func (l *LocalStore) SaveProductos(productos []models.Producto) error {
	return writeArray(l.ProductosPath, productos)
}

// LoadUsuarios reads and normalizes the local user backup.
func (l *LocalStore) LoadUsuarios() []models.Usuario {
	raws := readArray(l.UsuariosPath)
	usuarios := make([]models.Usuario, 0, len(raws))
	for _, raw := range raws {
		usuarios = append(usuarios, models.NormalizeUsuario(raw))
	}
	return usuarios
}

// SaveUsuarios writes the full user collection.
func (l *LocalStore) SaveUsuarios(usuarios []models.Usuario) error {
	return writeArray(l.UsuariosPath, usuarios)
}

func readArray(path string) []map[string]interface{} {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ No se pudo leer %s: %v", path, err)
		}
		return nil
	}
	var raws []map[string]interface{}
	if err := json.Unmarshal(data, &raws); err != nil {
		log.Printf("⚠️ JSON inválido en %s, se ignora el respaldo local: %v", path, err)
		return nil
	}
	return raws
}

// writeArray serializes indented UTF-8 with HTML escaping off so tildes,
// eñes and URLs land in the file literally, like the backups the app has
// always produced.
func writeArray(path string, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
