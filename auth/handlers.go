package auth

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Gabytass/tesisgabyss/mailer"
	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/store"
)

type loginInput struct {
	Correo string `json:"correo" binding:"required"`
	Clave  string `json:"clave" binding:"required"`
}

type registroInput struct {
	Nombre string `json:"nombre" binding:"required"`
	Correo string `json:"correo" binding:"required"`
	Clave  string `json:"clave" binding:"required"`
	Rol    string `json:"rol"`
}

// POST /auth/login
func Login(usuarios *store.Usuarios) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
			return
		}

		usuario, fuente, ok := usuarios.GetUsuario(c.Request.Context(), input.Correo)
		if !ok || !VerificarClave(input.Clave, usuario.Clave) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
			return
		}

		// Legacy plaintext record: upgrade it to a bcrypt hash in the store
		// it came from. Best-effort, a failure never blocks the login.
		if !EsHash(usuario.Clave) {
			if hash, err := HashClave(input.Clave); err != nil {
				log.Printf("⚠️ No se pudo generar hash para %s: %v", usuario.Correo, err)
			} else if err := usuarios.ActualizarClave(c.Request.Context(), usuario.Correo, hash, fuente); err != nil {
				log.Printf("⚠️ No se pudo actualizar la clave de %s: %v", usuario.Correo, err)
			} else {
				log.Printf("🔐 Clave de %s migrada a hash", usuario.Correo)
			}
		}

		session := sessions.Default(c)
		session.Set("usuario", usuario.Nombre)
		session.Set("correo", usuario.Correo)
		session.Set("rol", usuario.Rol)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la sesión"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mensaje": "Inicio de sesión exitoso",
			"usuario": usuario.Publico(),
		})
	}
}

// GET /auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		session.Clear()
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cerrar la sesión"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensaje": "Sesión cerrada"})
	}
}

// POST /auth/registro
func Registro(usuarios *store.Usuarios) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registroInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
			return
		}

		correo := strings.ToLower(strings.TrimSpace(input.Correo))
		if correo == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Correo inválido"})
			return
		}
		rol := input.Rol
		if rol != models.RolAdmin {
			rol = models.RolUser
		}

		if usuarios.Existe(c.Request.Context(), correo) {
			c.JSON(http.StatusConflict, gin.H{"error": "El correo ya está registrado"})
			return
		}

		hash, err := HashClave(input.Clave)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el usuario"})
			return
		}

		usuario := models.Usuario{
			Nombre: input.Nombre,
			Correo: correo,
			Clave:  hash,
			Rol:    rol,
		}
		resultado := usuarios.SaveUsuario(c.Request.Context(), usuario)
		if resultado == store.EscrituraFallida {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el usuario"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"mensaje":      "Usuario registrado correctamente",
			"usuario":      usuario.Publico(),
			"sincronizado": resultado.Sincronizado(),
		})
	}
}

// POST /auth/recuperar
func Recuperar(usuarios *store.Usuarios, m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Correo string `json:"correo" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Correo requerido"})
			return
		}
		if m == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Envío de correos no configurado"})
			return
		}

		correo := strings.ToLower(strings.TrimSpace(input.Correo))

		// Same answer whether or not the account exists.
		respuesta := gin.H{"mensaje": "Si el correo está registrado, se envió un enlace de recuperación"}

		usuario, _, ok := usuarios.GetUsuario(c.Request.Context(), correo)
		if !ok {
			c.JSON(http.StatusOK, respuesta)
			return
		}

		token, err := GenerarTokenReset(usuario.Correo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el enlace"})
			return
		}

		cuerpo := fmt.Sprintf(
			"<p>Hola %s,</p><p>Usa este token para restablecer tu clave (válido por una hora):</p><p><b>%s</b></p>",
			usuario.Nombre, token,
		)
		if err := m.Send(usuario.Correo, "Recuperación de clave", cuerpo); err != nil {
			log.Printf("❌ No se pudo enviar correo a %s: %v", usuario.Correo, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo enviar el correo"})
			return
		}

		c.JSON(http.StatusOK, respuesta)
	}
}

// POST /auth/restablecer
func Restablecer(usuarios *store.Usuarios) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Token string `json:"token" binding:"required"`
			Clave string `json:"clave" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token y clave son obligatorios"})
			return
		}

		correo, err := ValidarTokenReset(input.Token)
		switch err {
		case nil:
		case ErrTokenExpirado:
			c.JSON(http.StatusGone, gin.H{"error": err.Error(), "motivo": "expirado"})
			return
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrTokenInvalido.Error(), "motivo": "invalido"})
			return
		}

		usuario, _, ok := usuarios.GetUsuario(c.Request.Context(), correo)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}

		hash, err := HashClave(input.Clave)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la clave"})
			return
		}
		usuario.Clave = hash

		resultado := usuarios.SaveUsuario(c.Request.Context(), usuario)
		if resultado == store.EscrituraFallida {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la clave"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mensaje":      "Clave actualizada correctamente",
			"sincronizado": resultado.Sincronizado(),
		})
	}
}
