package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"github.com/Gabytass/tesisgabyss/models"
	"github.com/Gabytass/tesisgabyss/store"
)

// ImportProductosExcel bulk-loads products from an uploaded .xlsx file with
// the same columns the export produces. Rows without a nombre or with an
// unparseable precio are skipped. Each row goes through the normal write path,
// so a Firebase outage still leaves everything in the local backup.
func ImportProductosExcel(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere un archivo de Excel"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo abrir el archivo de Excel"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo leer el archivo de Excel"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El archivo está vacío o no tiene encabezado"})
			return
		}

		sheet := xlFile.Sheets[0]
		creados, actualizados, omitidos := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			nombre := get(1)
			descripcion := get(2)
			precio, errPrecio := strconv.ParseFloat(get(3), 64)
			imagen := get(4)
			archivoRA := get(5)

			if nombre == "" || errPrecio != nil || precio < 0 {
				omitidos++
				continue
			}

			nuevo := id == ""
			if nuevo {
				id = uuid.NewString()
			} else if _, ok := catalog.GetProducto(c.Request.Context(), id); !ok {
				nuevo = true
			}

			producto := models.Producto{
				ID:          id,
				Nombre:      nombre,
				Descripcion: descripcion,
				Precio:      precio,
				Imagen:      imagen,
				ArchivoRA:   archivoRA,
			}
			if catalog.SaveProducto(c.Request.Context(), producto) == store.EscrituraFallida {
				omitidos++
				continue
			}
			if nuevo {
				creados++
			} else {
				actualizados++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"mensaje":      "Importación completada",
			"creados":      creados,
			"actualizados": actualizados,
			"omitidos":     omitidos,
		})
	}
}
