package entity

import (
	"fmt"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// Duration duración de ruta descompuesta en días, horas y minutos.
// El total en minutos es la representación persistida; los tres campos son la forma de edición.
type Duration struct {
	Days    int
	Hours   int
	Minutes int
}

// SplitMinutes descompone un total de minutos: días = total/1440, horas = (total mod 1440)/60,
// minutos = total mod 60. Totales negativos se tratan como 0.
func SplitMinutes(total int) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{
		Days:    total / minutesPerDay,
		Hours:   (total % minutesPerDay) / minutesPerHour,
		Minutes: total % minutesPerHour,
	}
}

// Total recompone el total en minutos. Componentes negativos cuentan como 0.
func (d Duration) Total() int {
	return nonNegative(d.Days)*minutesPerDay + nonNegative(d.Hours)*minutesPerHour + nonNegative(d.Minutes)
}

// String formato corto "1d 2h 30m"; omite componentes en cero salvo que todo sea cero.
func (d Duration) String() string {
	var parts []string
	if d.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d.Days))
	}
	if d.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", d.Hours))
	}
	if d.Minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", d.Minutes))
	}
	return strings.Join(parts, " ")
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
