package models

import (
	"encoding/json"
	"testing"
)

func TestNormalizeProducto(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]interface{}
		index int
		want  Producto
	}{
		{
			name:  "empty record gets every default",
			raw:   map[string]interface{}{},
			index: 0,
			want: Producto{
				ID:     "1",
				Nombre: "Producto sin nombre",
			},
		},
		{
			name:  "fallback id follows position",
			raw:   map[string]interface{}{"nombre": "Lámpara"},
			index: 4,
			want:  Producto{ID: "5", Nombre: "Lámpara"},
		},
		{
			name: "complete record passes through",
			raw: map[string]interface{}{
				"id":          "abc",
				"nombre":      "Silla",
				"descripcion": "Una silla",
				"precio":      float64(99.5),
				"imagen":      "http://x/silla.png",
				"archivo_ra":  "silla.glb",
			},
			want: Producto{
				ID:          "abc",
				Nombre:      "Silla",
				Descripcion: "Una silla",
				Precio:      99.5,
				Imagen:      "http://x/silla.png",
				ArchivoRA:   "silla.glb",
			},
		},
		{
			name: "precio as string",
			raw:  map[string]interface{}{"id": "1", "nombre": "X", "precio": "12.50"},
			want: Producto{ID: "1", Nombre: "X", Precio: 12.5},
		},
		{
			name: "precio as firestore integer",
			raw:  map[string]interface{}{"id": "1", "nombre": "X", "precio": int64(7)},
			want: Producto{ID: "1", Nombre: "X", Precio: 7},
		},
		{
			name: "precio as json.Number",
			raw:  map[string]interface{}{"id": "1", "nombre": "X", "precio": json.Number("3.25")},
			want: Producto{ID: "1", Nombre: "X", Precio: 3.25},
		},
		{
			name: "unparseable precio defaults to cero",
			raw:  map[string]interface{}{"id": "1", "nombre": "X", "precio": "gratis"},
			want: Producto{ID: "1", Nombre: "X", Precio: 0},
		},
		{
			name: "negative precio clamps to cero",
			raw:  map[string]interface{}{"id": "1", "nombre": "X", "precio": float64(-8)},
			want: Producto{ID: "1", Nombre: "X", Precio: 0},
		},
		{
			name: "wrong types never panic",
			raw: map[string]interface{}{
				"id":     float64(3),
				"nombre": []interface{}{"no"},
				"precio": map[string]interface{}{},
			},
			index: 2,
			want:  Producto{ID: "3", Nombre: "Producto sin nombre"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProducto(tt.raw, tt.index)
			if got != tt.want {
				t.Errorf("NormalizeProducto() = %+v, want %+v", got, tt.want)
			}
			if got.Precio < 0 {
				t.Errorf("precio negativo tras normalizar: %v", got.Precio)
			}
		})
	}
}

func TestNormalizeUsuario(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want Usuario
	}{
		{
			name: "empty record",
			raw:  map[string]interface{}{},
			want: Usuario{Rol: RolUser},
		},
		{
			name: "legacy password field becomes clave",
			raw:  map[string]interface{}{"correo": "a@b.com", "password": "secreto"},
			want: Usuario{Correo: "a@b.com", Clave: "secreto", Rol: RolUser},
		},
		{
			name: "clave wins over legacy password",
			raw:  map[string]interface{}{"correo": "a@b.com", "clave": "nueva", "password": "vieja"},
			want: Usuario{Correo: "a@b.com", Clave: "nueva", Rol: RolUser},
		},
		{
			name: "correo is lower-cased",
			raw:  map[string]interface{}{"correo": "Gaby@Example.COM", "clave": "x", "rol": "admin"},
			want: Usuario{Correo: "gaby@example.com", Clave: "x", Rol: RolAdmin},
		},
		{
			name: "empty rol defaults to user",
			raw:  map[string]interface{}{"nombre": "Gaby", "correo": "g@x.com", "clave": "x", "rol": ""},
			want: Usuario{Nombre: "Gaby", Correo: "g@x.com", Clave: "x", Rol: RolUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeUsuario(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeUsuario() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
