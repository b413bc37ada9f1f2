package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// EsHash reports whether a stored credential is already a bcrypt hash. The
// fixed prefix is what separates hashed claves from legacy plaintext ones
// still sitting in old documents.
func EsHash(clave string) bool {
	return strings.HasPrefix(clave, "$2a$") ||
		strings.HasPrefix(clave, "$2b$") ||
		strings.HasPrefix(clave, "$2y$")
}

// VerificarClave checks a presented secret against the stored credential.
// Hash-shaped values only ever go through the bcrypt comparison, so a stored
// hash never matches by plain string equality; everything else is treated as
// legacy plaintext. Never returns an error: any comparison failure is false.
func VerificarClave(presentada, almacenada string) bool {
	if almacenada == "" {
		return false
	}
	if EsHash(almacenada) {
		return bcrypt.CompareHashAndPassword([]byte(almacenada), []byte(presentada)) == nil
	}
	return presentada == almacenada
}

// HashClave produces the bcrypt hash stored for new and upgraded accounts.
func HashClave(clave string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
