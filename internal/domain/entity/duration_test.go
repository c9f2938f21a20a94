package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

func TestSplitMinutes_RoundTrip(t *testing.T) {
	for m := 0; m < 100000; m++ {
		d := entity.SplitMinutes(m)
		if d.Total() != m {
			t.Fatalf("round trip %d -> %+v -> %d", m, d, d.Total())
		}
		if d.Hours >= 24 || d.Minutes >= 60 {
			t.Fatalf("componentes fuera de rango para %d: %+v", m, d)
		}
	}
}

func TestSplitMinutes(t *testing.T) {
	assert.Equal(t, entity.Duration{Days: 1, Hours: 2, Minutes: 30}, entity.SplitMinutes(1590))
	assert.Equal(t, entity.Duration{}, entity.SplitMinutes(-15), "negativos se tratan como 0")
}

func TestDuration_String(t *testing.T) {
	cases := map[int]string{
		0:    "0m",
		45:   "45m",
		60:   "1h",
		1590: "1d 2h 30m",
		2880: "2d",
	}
	for total, want := range cases {
		assert.Equal(t, want, entity.SplitMinutes(total).String(), "total=%d", total)
	}
}
