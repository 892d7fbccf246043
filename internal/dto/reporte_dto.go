package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Mes is 0-indexed (0 = Enero). A pointer distinguishes "Enero" from "missing".
type GenerarReporteMensualRequest struct {
	Anio int  `json:"anio" validate:"required"`
	Mes  *int `json:"mes"  validate:"required"`
}

type GenerarReporteAnualRequest struct {
	Anio int `json:"anio" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MesReporteResponse struct {
	Valor  int    `json:"valor"`
	Nombre string `json:"nombre"`
}

type SeleccionPeriodoResponse struct {
	Anio int `json:"anio"`
	Mes  int `json:"mes"`
}

// PeriodosReporteResponse lists every selectable period for the report
// screen, plus the default (latest completed) selection.
type PeriodosReporteResponse struct {
	AniosMensuales      []int                    `json:"anios_mensuales"`
	AniosAnuales        []int                    `json:"anios_anuales"`
	MesesElegibles      []MesReporteResponse     `json:"meses_elegibles"`
	SeleccionPorDefecto SeleccionPeriodoResponse `json:"seleccion_por_defecto"`
}

// ReporteGeneradoResponse describes a generated report. No file is produced:
// generation is a named, parameterized request whose result is descriptive.
type ReporteGeneradoResponse struct {
	Periodo string `json:"periodo"` // e.g. "Abril 2025" or "2024"
	Tipo    string `json:"tipo"`    // monthly | annual
}
