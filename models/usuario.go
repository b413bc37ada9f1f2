package models

import "strings"

const (
	RolAdmin = "admin"
	RolUser  = "user"
)

// Usuario is an account. The Firestore document id is the lower-cased correo,
// so Correo doubles as the record identifier in both stores. Clave holds either
// a bcrypt hash or, for accounts created before hashing landed, the legacy
// plaintext secret.
type Usuario struct {
	Nombre string `json:"nombre" firestore:"nombre"`
	Correo string `json:"correo" firestore:"correo"`
	Clave  string `json:"clave" firestore:"clave"`
	Rol    string `json:"rol" firestore:"rol"`
}

// NormalizeUsuario coerces a raw document into a complete Usuario. Old records
// stored the secret under "password"; that field is folded into clave when
// clave itself is absent. Total: never fails.
func NormalizeUsuario(raw map[string]interface{}) Usuario {
	u := Usuario{
		Nombre: stringField(raw, "nombre"),
		Correo: strings.ToLower(stringField(raw, "correo")),
		Clave:  stringField(raw, "clave"),
		Rol:    stringField(raw, "rol"),
	}
	if u.Clave == "" {
		u.Clave = stringField(raw, "password")
	}
	if u.Rol == "" {
		u.Rol = RolUser
	}
	return u
}

// Map renders the usuario as the generic document shape the remote store takes.
func (u Usuario) Map() map[string]interface{} {
	return map[string]interface{}{
		"nombre": u.Nombre,
		"correo": u.Correo,
		"clave":  u.Clave,
		"rol":    u.Rol,
	}
}

// Publico strips the credential for listings returned to clients.
func (u Usuario) Publico() map[string]interface{} {
	return map[string]interface{}{
		"nombre": u.Nombre,
		"correo": u.Correo,
		"rol":    u.Rol,
	}
}
