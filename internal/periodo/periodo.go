// Package periodo determines which calendar periods are selectable for
// report generation. A report covers a closed accounting period: an
// in-progress month or year has no final totals, so it is excluded from
// selection entirely instead of merely warned about.
package periodo

import "time"

// Mes is a selectable month. Valor is 0-indexed (0 = Enero), matching the
// convention used by the dashboard.
type Mes struct {
	Valor  int
	Nombre string
}

var nombresMeses = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes returns the Spanish month name for a 0-indexed month, or the
// empty string for an out-of-range value.
func NombreMes(mes int) string {
	if mes < 0 || mes > 11 {
		return ""
	}
	return nombresMeses[mes]
}

// Meses returns the twelve months of a year.
func Meses() []Mes {
	out := make([]Mes, 12)
	for i, n := range nombresMeses {
		out[i] = Mes{Valor: i, Nombre: n}
	}
	return out
}

// AniosMensuales lists the years offered for monthly reports: the current
// year and the previous one.
func AniosMensuales(ahora time.Time) []int {
	y := ahora.Year()
	return []int{y, y - 1}
}

// AniosAnuales lists the years offered for annual reports: the three
// trailing fully-elapsed years. The current year is never included.
func AniosAnuales(ahora time.Time) []int {
	y := ahora.Year()
	return []int{y - 1, y - 2, y - 3}
}

// MesesElegibles returns the months selectable for a monthly report of the
// given year. For the current year only completed months qualify — the
// current month is never reportable. Past years expose all twelve months.
func MesesElegibles(ahora time.Time, anio int) []Mes {
	if anio < ahora.Year() {
		return Meses()
	}
	if anio > ahora.Year() {
		return nil
	}
	actual := int(ahora.Month()) - 1
	out := make([]Mes, 0, actual)
	for i := 0; i < actual; i++ {
		out = append(out, Mes{Valor: i, Nombre: nombresMeses[i]})
	}
	return out
}

// EsMesElegible reports whether (anio, mes) is a completed month.
func EsMesElegible(ahora time.Time, anio, mes int) bool {
	if mes < 0 || mes > 11 {
		return false
	}
	if anio < ahora.Year() {
		return true
	}
	return anio == ahora.Year() && mes < int(ahora.Month())-1
}

// EsAnioAnualElegible reports whether anio is offered for annual reports.
func EsAnioAnualElegible(ahora time.Time, anio int) bool {
	y := ahora.Year()
	return anio >= y-3 && anio < y
}

// UltimoPeriodoCerrado returns the most recent completed (year, month):
// the previous month, rolling back to December of the prior year in January.
func UltimoPeriodoCerrado(ahora time.Time) (anio, mes int) {
	anio = ahora.Year()
	mes = int(ahora.Month()) - 2
	if mes < 0 {
		mes = 11
		anio--
	}
	return anio, mes
}

// AjustarMes clamps a month selection after a year change. If (anio, mes)
// remains eligible it is kept; otherwise the latest eligible month is
// returned, so a stale ineligible month never stays selected.
func AjustarMes(ahora time.Time, anio, mes int) int {
	if EsMesElegible(ahora, anio, mes) {
		return mes
	}
	if anio < ahora.Year() {
		return 11
	}
	_, ultimo := UltimoPeriodoCerrado(ahora)
	return ultimo
}
