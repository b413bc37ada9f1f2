package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Gabytass/tesisgabyss/store"
)

// ExportProductosExcel downloads the reconciled catalog as an .xlsx sheet,
// rows in merge order.
func ExportProductosExcel(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		productos := catalog.ListProductos(c.Request.Context())

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Productos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la hoja de Excel"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Nombre", "Descripcion", "Precio", "Imagen", "ArchivoRA"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range productos {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Nombre)
			row.AddCell().SetValue(p.Descripcion)
			row.AddCell().SetValue(p.Precio)
			row.AddCell().SetValue(p.Imagen)
			row.AddCell().SetValue(p.ArchivoRA)
		}

		c.Header("Content-Disposition", "attachment; filename=productos.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo escribir el archivo de Excel"})
			return
		}
	}
}
