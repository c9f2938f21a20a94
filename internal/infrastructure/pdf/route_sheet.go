// Package pdf genera la hoja de ruta imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la ruta + empresa │ Estado + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ITINERARIO: origen, destino, salida, duración, repetición   │
//	│  VEHÍCULO asignado                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Parada | Minutos                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR al detalle de la ruta                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
)

var _ usecase.RouteSheetRenderer = (*RouteSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// RouteSheetGenerator implementa usecase.RouteSheetRenderer.
type RouteSheetGenerator struct{}

// NewRouteSheetGenerator construye el generador.
func NewRouteSheetGenerator() *RouteSheetGenerator { return &RouteSheetGenerator{} }

// RenderRouteSheet genera el PDF y devuelve sus bytes.
func (g *RouteSheetGenerator) RenderRouteSheet(_ context.Context, sheet dto.RouteSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de ruta "+sheet.Route.Name, true).
		WithAuthor(nonEmpty(sheet.CompanyName, "Consola de flota"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(itineraryRows(sheet.Route)...)
	m.AddRows(vehicleRow(sheet.VehicleLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(stopsHeaderRow())
	m.AddRows(stopRows(sheet.Route)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sheet.Route))

	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(sheet dto.RouteSheet) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(sheet.Route.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sheet.CompanyName, "-"), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("HOJA DE RUTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sheet.Route.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Generada: "+sheet.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func itineraryRows(r dto.RouteResponse) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(9).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}
	return []core.Row{
		field("Origen:", r.StartPoint),
		field("Destino:", r.EndPoint),
		field("Salida:", nonEmpty(r.Departure, "-")),
		field("Duración estimada:", r.DurationText),
		field("Repetición:", repetitionText(r)),
	}
}

func vehicleRow(label string) core.Row {
	return row.New(8).Add(
		col.New(3).Add(text.New("Vehículo:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(9).Add(text.New(nonEmpty(label, "Sin vehículo asignado"), props.Text{Size: 9, Top: 2})),
	)
}

func stopsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Parada", 8, align.Left),
		h("Minutos", 3, align.Right),
	)
}

// stopRows: origen, paradas numeradas y destino.
func stopRows(r dto.RouteResponse) []core.Row {
	rows := make([]core.Row, 0, len(r.Stops)+2)
	add := func(n, place, minutes string) {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(n, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(place, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(minutes, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	add("", r.StartPoint, "")
	for i, s := range r.Stops {
		add(strconv.Itoa(i+1), s.Location, strconv.Itoa(s.StopMinutes))
	}
	add("", r.EndPoint, "")
	return rows
}

func totalRow(r dto.RouteResponse) core.Row {
	dwell := 0
	for _, s := range r.Stops {
		dwell += s.StopMinutes
	}
	return row.New(12).Add(
		col.New(6),
		col.New(6).Add(
			text.New(fmt.Sprintf("Tiempo en paradas: %d min", dwell), props.Text{
				Size: 8, Align: align.Right, Right: 1, Color: colorGray, Top: 1,
			}),
			text.New(fmt.Sprintf("TOTAL ESTIMADO: %s (%d min)", r.DurationText, r.EstimatedDuration), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Color: colorPrimary, Top: 6,
			}),
		),
	)
}

func footerRow(sheet dto.RouteSheet) core.Row {
	if sheet.DetailURL == "" {
		return row.New(1)
	}
	return row.New(45).Add(
		col.New(4).Add(code.NewQr(sheet.DetailURL, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Escanee el código QR para abrir\nla ruta en la consola de flota.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(sheet.DetailURL, props.Text{Size: 7, Top: 20, Left: 3, Color: colorGray}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func repetitionText(r dto.RouteResponse) string {
	if r.RepetitionPeriod == "" || r.RepetitionFrequency <= 0 {
		return "Sin repetición"
	}
	unit := map[string]string{"DIARIO": "día(s)", "SEMANAL": "semana(s)", "MENSUAL": "mes(es)"}[r.RepetitionPeriod]
	return fmt.Sprintf("Cada %d %s", r.RepetitionFrequency, nonEmpty(unit, r.RepetitionPeriod))
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
