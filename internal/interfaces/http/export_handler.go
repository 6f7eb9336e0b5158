package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
)

// ExportHandler descarga del registro filtrado (csv, pdf, xml).
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar la vista filtrada
// @Description  Acepta los mismos filtros que GET /api/assets. El archivo se llama
// @Description  SubGuard_Export_YYYY-MM-DD.<formato>.
// @Tags         assets
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/pdf
// @Produce      application/xml
// @Param        format  path   string  true   "csv, pdf, xml"
// @Param        view    query  string  false  "vista"
// @Param        search  query  string  false  "búsqueda"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/assets/export/{format} [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return invalidBody(c)
	}
	var file *dto.ExportFile
	if format := strings.ToLower(c.Params("format")); format == "csv" {
		file, err = h.uc.CSV(c.UserContext(), q)
	} else {
		file, err = h.uc.Report(c.UserContext(), format, q)
	}
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Body)
}

// Formats godoc
// @Summary      Formatos de exportación disponibles
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/assets/export [get]
func (h *ExportHandler) Formats(c *fiber.Ctx) error {
	return c.JSON(append([]string{"csv"}, h.uc.Formats()...))
}
