package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
)

func TestRenderRouteSheet(t *testing.T) {
	sheet := dto.RouteSheet{
		Route: dto.RouteResponse{
			ID:                  "route-0001",
			Name:                "Bogotá - Tunja",
			StartPoint:          "Terminal Salitre",
			EndPoint:            "Terminal Tunja",
			Stops:               []dto.StopResponse{{Location: "Chía", StopMinutes: 5}, {Location: "Gachancipá", StopMinutes: 10}},
			Departure:           "2026-03-01 06:30",
			EstimatedDuration:   150,
			DurationText:        "2h 30m",
			RepetitionFrequency: 1,
			RepetitionPeriod:    "DIARIO",
			Status:              "ACTIVA",
		},
		CompanyName:  "Expreso Andino",
		VehicleLabel: "ABC123 · Mercedes OF-1721 (12)",
		DetailURL:    "https://consola.flota.co/dashboard/routes/route-0001",
		GeneratedAt:  time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC),
	}

	doc, err := NewRouteSheetGenerator().RenderRouteSheet(context.Background(), sheet)
	require.NoError(t, err)
	require.Greater(t, len(doc), 4)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestRepetitionText(t *testing.T) {
	assert.Equal(t, "Sin repetición", repetitionText(dto.RouteResponse{}))
	assert.Equal(t, "Cada 2 semana(s)", repetitionText(dto.RouteResponse{RepetitionFrequency: 2, RepetitionPeriod: "SEMANAL"}))
	assert.Equal(t, "Cada 1 mes(es)", repetitionText(dto.RouteResponse{RepetitionFrequency: 1, RepetitionPeriod: "MENSUAL"}))
}
