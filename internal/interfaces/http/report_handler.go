package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/report"
)

// ReportHandler sirve los reportes descargables (PDF, CSV, XLSX).
type ReportHandler struct {
	uc *report.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func sendFile(c *fiber.Ctx, f *report.ExportFile) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Filename+`"`)
	return c.Send(f.Data)
}

// StorageExport godoc
// @Summary      Exportar almacén central (CSV o XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv|xlsx"  default(csv)
// @Success      200  {file}  binary
// @Router       /api/reports/storage [get]
func (h *ReportHandler) StorageExport(c *fiber.Ctx) error {
	f, err := h.uc.StorageExport(c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}

// UnitInventoryExport godoc
// @Summary      Exportar inventario a bordo de una unidad (CSV o XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        id      path   string  true   "ID de la unidad"
// @Param        format  query  string  false  "csv|xlsx"  default(csv)
// @Success      200  {file}  binary
// @Router       /api/reports/ambulances/{id}/inventory [get]
func (h *ReportHandler) UnitInventoryExport(c *fiber.Ctx) error {
	f, err := h.uc.UnitInventoryExport(c.Params("id"), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}

// ShortagePDF godoc
// @Summary      PDF de faltantes de una unidad
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {file}  binary
// @Router       /api/reports/ambulances/{id}/shortfalls.pdf [get]
func (h *ReportHandler) ShortagePDF(c *fiber.Ctx) error {
	f, err := h.uc.ShortagePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}

// RequisitionPDF godoc
// @Summary      PDF imprimible de una requisición
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la requisición"
// @Success      200  {file}  binary
// @Router       /api/reports/requisitions/{id}.pdf [get]
func (h *ReportHandler) RequisitionPDF(c *fiber.Ctx) error {
	f, err := h.uc.RequisitionPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}
