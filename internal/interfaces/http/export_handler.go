package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lewistwins/websites/internal/application/dto"
	"github.com/lewistwins/websites/internal/application/export"
	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/pkg/logger"
)

// ExportHandler descargas generadas a partir del directorio: PDF de categoría y sitemap.
type ExportHandler struct {
	pdf     *export.PDFUseCase
	sitemap *export.SitemapUseCase
	log     *logger.Logger
}

// NewExportHandler construye el handler. Los límites por consulta los aplican los casos de uso.
func NewExportHandler(pdf *export.PDFUseCase, sitemap *export.SitemapUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{pdf: pdf, sitemap: sitemap, log: log}
}

// CategoryPDF godoc
// @Summary      Descargar PDF de una categoría
// @Description  Ficha A4 con la categoría y sus sitios; cada sitio lleva un QR a su URL.
// @Tags         export
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /category/{id}/export.pdf [get]
func (h *ExportHandler) CategoryPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadCategoryPDF(c.Context(), c.Params("id"))
	if err != nil {
		if isLoadError(err) {
			status, body := storeErrorStatus(err)
			return c.Status(status).JSON(body)
		}
		h.log.Error().Err(err).Str("category_id", c.Params("id")).Msg("generar PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "PDF_ERROR", Message: "no se pudo generar el PDF",
		})
	}

	c.Attachment(filename)
	return c.Send(pdfBytes)
}

// Sitemap godoc
// @Summary      Sitemap del sitio
// @Tags         export
// @Produce      xml
// @Success      200  {string}  string
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /sitemap.xml [get]
func (h *ExportHandler) Sitemap(c *fiber.Ctx) error {
	out, err := h.sitemap.Build(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("generar sitemap")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: "no se pudo generar el sitemap",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// isLoadError true si el error viene de cargar la categoría y no de generar el documento.
func isLoadError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrStoreUnavailable) ||
		errors.Is(err, context.DeadlineExceeded)
}
