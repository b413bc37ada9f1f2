package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpirado marks a structurally valid reset token past its expiry.
	ErrTokenExpirado = errors.New("el enlace de recuperación expiró")
	// ErrTokenInvalido marks anything else: bad signature, wrong shape, garbage.
	ErrTokenInvalido = errors.New("enlace de recuperación inválido")
)

// TokenValidez is how long a password-reset link works.
const TokenValidez = time.Hour

func resetSecret() []byte {
	if s := os.Getenv("RESET_TOKEN_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(os.Getenv("SESSION_SECRET"))
}

// GenerarTokenReset issues a signed, short-lived token tied to one correo.
func GenerarTokenReset(correo string) (string, error) {
	claims := jwt.MapClaims{
		"correo": correo,
		"uso":    "reset",
		"exp":    time.Now().Add(TokenValidez).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(resetSecret())
}

// ValidarTokenReset returns the correo a reset token was issued for. Expired
// tokens and invalid ones are reported as distinct errors so the handler can
// tell the user which happened.
func ValidarTokenReset(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return resetSecret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpirado
		}
		return "", ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalido
	}
	if uso, _ := claims["uso"].(string); uso != "reset" {
		return "", ErrTokenInvalido
	}
	correo, _ := claims["correo"].(string)
	if correo == "" {
		return "", ErrTokenInvalido
	}
	return correo, nil
}
