package auth

import "testing"

func TestVerificarClave(t *testing.T) {
	hash, err := HashClave("abc123")
	if err != nil {
		t.Fatalf("HashClave: %v", err)
	}

	tests := []struct {
		name       string
		presentada string
		almacenada string
		want       bool
	}{
		{"clave vacía almacenada falla", "lo-que-sea", "", false},
		{"texto plano coincide", "abc123", "abc123", true},
		{"texto plano no coincide", "abc124", "abc123", false},
		{"hash bcrypt coincide", "abc123", hash, true},
		{"hash bcrypt no coincide", "otra", hash, false},
		// A stored hash must never match by plain string equality, even when
		// the presented secret is the hash itself.
		{"hash presentado como texto plano falla", hash, hash, false},
		{"hash corrupto falla sin pánico", "abc123", "$2b$12$demasiado-corto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerificarClave(tt.presentada, tt.almacenada); got != tt.want {
				t.Errorf("VerificarClave(%q, %q) = %v, want %v", tt.presentada, tt.almacenada, got, tt.want)
			}
		})
	}
}

func TestEsHash(t *testing.T) {
	if EsHash("abc123") {
		t.Error("texto plano no es hash")
	}
	for _, prefijo := range []string{"$2a$", "$2b$", "$2y$"} {
		if !EsHash(prefijo + "12$resto") {
			t.Errorf("el prefijo %s debe reconocerse como hash", prefijo)
		}
	}
}

func TestHashClaveVerifiable(t *testing.T) {
	hash, err := HashClave("disfaluvid123")
	if err != nil {
		t.Fatalf("HashClave: %v", err)
	}
	if !EsHash(hash) {
		t.Errorf("el hash generado debe tener el prefijo bcrypt: %s", hash)
	}
	if !VerificarClave("disfaluvid123", hash) {
		t.Error("la clave original debe verificar contra su hash")
	}
}
