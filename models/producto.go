package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Producto is one catalog entry. The same shape lives in the Firestore
// "productos" collection and in the local productos.json backup, so the
// field names stay aligned with both.
type Producto struct {
	ID          string  `json:"id" firestore:"id"`
	Nombre      string  `json:"nombre" firestore:"nombre"`
	Descripcion string  `json:"descripcion" firestore:"descripcion"`
	Precio      float64 `json:"precio" firestore:"precio"`
	Imagen      string  `json:"imagen" firestore:"imagen"`
	// ArchivoRA is the uploaded AR model filename (glb/gltf/fbx/obj), empty when none.
	ArchivoRA string `json:"archivo_ra" firestore:"archivo_ra"`
}

// NormalizeProducto coerces a raw document (from either store) into a complete
// Producto. index is the record's position in its source collection and seeds
// the fallback id for legacy entries that never got one. Never fails: anything
// it cannot parse becomes a default.
func NormalizeProducto(raw map[string]interface{}, index int) Producto {
	p := Producto{
		ID:          stringField(raw, "id"),
		Nombre:      stringField(raw, "nombre"),
		Descripcion: stringField(raw, "descripcion"),
		Precio:      precioField(raw["precio"]),
		Imagen:      stringField(raw, "imagen"),
		ArchivoRA:   stringField(raw, "archivo_ra"),
	}
	if p.ID == "" {
		p.ID = strconv.Itoa(index + 1)
	}
	if p.Nombre == "" {
		p.Nombre = "Producto sin nombre"
	}
	return p
}

// Map renders the producto as the generic document shape the remote store takes.
func (p Producto) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"nombre":      p.Nombre,
		"descripcion": p.Descripcion,
		"precio":      p.Precio,
		"imagen":      p.Imagen,
		"archivo_ra":  p.ArchivoRA,
	}
}

func stringField(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// precioField accepts the numeric shapes the two stores produce: float64 from
// encoding/json and Firestore doubles, int64 from Firestore integers, plus
// strings and json.Number from hand-edited backup files. Unparseable or
// negative values collapse to 0.
func precioField(v interface{}) float64 {
	var precio float64
	switch n := v.(type) {
	case float64:
		precio = n
	case float32:
		precio = float64(n)
	case int:
		precio = float64(n)
	case int64:
		precio = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		precio = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		precio = f
	default:
		return 0
	}
	if precio < 0 {
		return 0
	}
	return precio
}
