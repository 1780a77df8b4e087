// Package report arma los reportes descargables: PDF de faltantes y
// requisiciones, y exportaciones tabulares (CSV/XLSX) del almacén y del
// inventario por unidad.
package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	appinv "github.com/frenchys-amb/ambutrack-api/internal/application/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

// ExportFile un archivo generado listo para servirse por HTTP.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportUseCase genera los reportes descargables.
type ExportUseCase struct {
	ambulanceRepo repository.AmbulanceRepository
	storageRepo   repository.StorageItemRepository
	stockRepo     repository.AmbulanceStockRepository
	reqRepo       repository.RequisitionRepository
	shortageUC    *appinv.ShortageUseCase
	pdfGen        ShortagePDFGenerator
	csv           TabularExporter
	xlsx          TabularExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	ambulanceRepo repository.AmbulanceRepository,
	storageRepo repository.StorageItemRepository,
	stockRepo repository.AmbulanceStockRepository,
	reqRepo repository.RequisitionRepository,
	shortageUC *appinv.ShortageUseCase,
	pdfGen ShortagePDFGenerator,
	csv, xlsx TabularExporter,
) *ExportUseCase {
	return &ExportUseCase{
		ambulanceRepo: ambulanceRepo,
		storageRepo:   storageRepo,
		stockRepo:     stockRepo,
		reqRepo:       reqRepo,
		shortageUC:    shortageUC,
		pdfGen:        pdfGen,
		csv:           csv,
		xlsx:          xlsx,
	}
}

// StorageExport exporta el almacén central completo en el formato pedido
// ("csv" o "xlsx").
func (uc *ExportUseCase) StorageExport(format string) (*ExportFile, error) {
	exporter, err := uc.exporter(format)
	if err != nil {
		return nil, err
	}
	items, err := uc.storageRepo.List("", 0, 0)
	if err != nil {
		return nil, err
	}
	headers := []string{"Nombre", "Categoría", "Tipo", "Cantidad", "Vencimiento"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		expiration := ""
		if it.ExpirationDate != nil {
			expiration = it.ExpirationDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			it.Name,
			it.Category,
			string(it.ItemType),
			strconv.Itoa(it.Quantity),
			expiration,
		})
	}
	data, err := exporter.Export("Almacén", headers, rows)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename("almacen", exporter.Extension()),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

// UnitInventoryExport exporta el inventario a bordo de una unidad.
func (uc *ExportUseCase) UnitInventoryExport(ambulanceID, format string) (*ExportFile, error) {
	exporter, err := uc.exporter(format)
	if err != nil {
		return nil, err
	}
	ambulance, err := uc.ambulanceRepo.GetByID(ambulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.stockRepo.ListByAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}
	headers := []string{"Ítem", "Categoría", "Tipo", "Cantidad", "Vencimiento"}
	rows := make([][]string, 0, len(stock))
	for _, s := range stock {
		expiration := ""
		if s.ExpirationDate != nil {
			expiration = s.ExpirationDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			s.NormalizedName,
			s.Category,
			string(s.ItemType),
			strconv.Itoa(s.Quantity),
			expiration,
		})
	}
	data, err := exporter.Export(ambulance.UnitID, headers, rows)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename("inventario_"+ambulance.UnitID, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

// ShortagePDF genera el PDF de faltantes de una unidad.
func (uc *ExportUseCase) ShortagePDF(ctx context.Context, ambulanceID string) (*ExportFile, error) {
	ambulance, err := uc.ambulanceRepo.GetByID(ambulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}
	shortfalls, err := uc.shortageUC.Shortfalls(ambulanceID)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdfGen.GenerateShortageReport(ctx, ambulance, shortfalls)
	if err != nil {
		return nil, fmt.Errorf("reporte de faltantes: %w", err)
	}
	return &ExportFile{
		Filename:    exportFilename("faltantes_"+ambulance.UnitID, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// RequisitionPDF genera el PDF imprimible de una requisición persistida.
func (uc *ExportUseCase) RequisitionPDF(ctx context.Context, requisitionID string) (*ExportFile, error) {
	requisition, err := uc.reqRepo.GetByID(requisitionID)
	if err != nil {
		return nil, err
	}
	if requisition == nil {
		return nil, domain.ErrNotFound
	}
	ambulance, err := uc.ambulanceRepo.GetByID(requisition.AmbulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}
	data, err := uc.pdfGen.GenerateRequisitionReport(ctx, ambulance, requisition)
	if err != nil {
		return nil, fmt.Errorf("reporte de requisición: %w", err)
	}
	return &ExportFile{
		Filename:    exportFilename("requisicion_"+ambulance.UnitID, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (uc *ExportUseCase) exporter(format string) (TabularExporter, error) {
	switch format {
	case "csv", "":
		return uc.csv, nil
	case "xlsx":
		return uc.xlsx, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

func exportFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102"), ext)
}
