package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Extensions the AR viewer can load.
var extensionesRA = map[string]bool{
	".glb":  true,
	".gltf": true,
	".fbx":  true,
	".obj":  true,
}

// ModelosDir resolves the AR model upload directory.
func ModelosDir() string {
	if dir := os.Getenv("MODELOS_DIR"); dir != "" {
		return dir
	}
	return "static/modelos_ra"
}

func archivoPermitido(nombre string) bool {
	return extensionesRA[strings.ToLower(filepath.Ext(nombre))]
}

// guardarModeloRA stores an uploaded AR model and returns the stored filename.
func guardarModeloRA(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if !archivoPermitido(file.Filename) {
		return "", fmt.Errorf("tipo de archivo no permitido: %s", filepath.Ext(file.Filename))
	}

	dir := ModelosDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	nombre := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
	if err := c.SaveUploadedFile(file, filepath.Join(dir, nombre)); err != nil {
		return "", err
	}
	return nombre, nil
}

// GetModeloRA serves an AR model file for the viewer.
// URL param: /modelos/:archivo
func GetModeloRA() gin.HandlerFunc {
	return func(c *gin.Context) {
		archivo := filepath.Base(c.Param("archivo"))
		if !archivoPermitido(archivo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de archivo no permitido"})
			return
		}

		ruta := filepath.Join(ModelosDir(), archivo)
		if _, err := os.Stat(ruta); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Modelo no encontrado"})
			return
		}
		c.File(ruta)
	}
}
