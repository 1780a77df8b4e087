// Package pdf genera los reportes imprimibles de la flota con Maroto v2:
// faltantes por unidad y requisiciones de reposición.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/application/report"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.ShortagePDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.ShortagePDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	operatorName string
}

// NewMarotoReportGenerator construye el generador. operatorName encabeza los reportes.
func NewMarotoReportGenerator(operatorName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{operatorName: operatorName}
}

// GenerateShortageReport genera el PDF de faltantes de una unidad.
func (g *MarotoReportGenerator) GenerateShortageReport(
	_ context.Context,
	ambulance *entity.Ambulance,
	shortfalls []dto.ShortfallDTO,
) ([]byte, error) {
	m := g.newDocument("Reporte de Faltantes")

	m.AddRows(g.headerRow("REPORTE DE FALTANTES", ambulance.UnitID))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(shortageTableHeader())
	for _, s := range shortfalls {
		m.AddRows(shortageDetailRow(s))
	}
	if len(shortfalls) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New(
			"La unidad está completa: no hay faltantes contra el estándar.",
			props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray},
		))))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateRequisitionReport genera el PDF imprimible de una requisición persistida.
func (g *MarotoReportGenerator) GenerateRequisitionReport(
	_ context.Context,
	ambulance *entity.Ambulance,
	requisition *entity.Requisition,
) ([]byte, error) {
	m := g.newDocument("Requisición de Reposición")

	m.AddRows(g.headerRow("REQUISICIÓN DE REPOSICIÓN", ambulance.UnitID))
	m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
		fmt.Sprintf("Fecha: %s   |   Motivo: %s", requisition.Date, nonEmpty(requisition.Data.Reason, "—")),
		props.Text{Size: 8, Top: 2, Color: colorGray},
	))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(requisitionTableHeader())
	for _, it := range requisition.Data.Items {
		m.AddRows(requisitionDetailRow(it))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(16).Add(
		col.New(6).Add(
			text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 6}),
			text.New("Entrega almacén", props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 6}),
			text.New("Recibe unidad", props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReportGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.operatorName, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: nombre del operador (izq) y unidad + fecha (der).
func (g *MarotoReportGenerator) headerRow(title, unitID string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.operatorName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Unidad "+unitID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func shortageTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 5, align.Left),
		h("Sección", 3, align.Left),
		h("Actual", 1, align.Center),
		h("Estándar", 2, align.Center),
		h("Falta", 1, align.Center),
	)
}

func shortageDetailRow(s dto.ShortfallDTO) core.Row {
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		c(s.Name, 5, align.Left),
		c(s.Section, 3, align.Left),
		c(strconv.Itoa(s.Current), 1, align.Center),
		c(strconv.Itoa(s.Recommended), 2, align.Center),
		c(strconv.Itoa(s.Missing), 1, align.Center),
	)
}

func requisitionTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Ítem", 6, align.Left),
		h("Sección", 4, align.Left),
	)
}

func requisitionDetailRow(it entity.RequisitionItem) core.Row {
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		c(strconv.Itoa(it.Quantity), 2, align.Center),
		c(it.Name, 6, align.Left),
		c(it.Category, 4, align.Left),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
