package service

import (
	"context"
	"fmt"
	"time"

	"sweetsky/internal/dto"
	"sweetsky/internal/periodo"
)

// Report kinds.
const (
	ReporteMensual = "monthly"
	ReporteAnual   = "annual"
)

// ReporteService exposes the report screen's period rules and the generate
// actions. Generation produces a descriptive record only; no file is
// written anywhere.
type ReporteService interface {
	Periodos(ctx context.Context, anio int) (dto.PeriodosReporteResponse, error)
	GenerarMensual(ctx context.Context, req dto.GenerarReporteMensualRequest) (dto.ReporteGeneradoResponse, error)
	GenerarAnual(ctx context.Context, req dto.GenerarReporteAnualRequest) (dto.ReporteGeneradoResponse, error)
}

type reporteService struct {
	ahora func() time.Time
}

// NewReporteService takes a clock so tests can pin "now". Pass time.Now in
// production wiring.
func NewReporteService(ahora func() time.Time) ReporteService {
	return &reporteService{ahora: ahora}
}

func (s *reporteService) Periodos(_ context.Context, anio int) (dto.PeriodosReporteResponse, error) {
	now := s.ahora()
	if anio == 0 {
		anio = now.Year()
	}

	meses := periodo.MesesElegibles(now, anio)
	mesesDTO := make([]dto.MesReporteResponse, 0, len(meses))
	for _, m := range meses {
		mesesDTO = append(mesesDTO, dto.MesReporteResponse{Valor: m.Valor, Nombre: m.Nombre})
	}

	defAnio, defMes := periodo.UltimoPeriodoCerrado(now)
	return dto.PeriodosReporteResponse{
		AniosMensuales: periodo.AniosMensuales(now),
		AniosAnuales:   periodo.AniosAnuales(now),
		MesesElegibles: mesesDTO,
		SeleccionPorDefecto: dto.SeleccionPeriodoResponse{
			Anio: defAnio,
			Mes:  defMes,
		},
	}, nil
}

func (s *reporteService) GenerarMensual(_ context.Context, req dto.GenerarReporteMensualRequest) (dto.ReporteGeneradoResponse, error) {
	now := s.ahora()
	if req.Mes == nil {
		return dto.ReporteGeneradoResponse{}, errValidacion("debe seleccionar un mes")
	}
	mes := *req.Mes
	if !periodo.EsMesElegible(now, req.Anio, mes) {
		return dto.ReporteGeneradoResponse{}, errValidacion("solo se pueden generar reportes de periodos completados")
	}
	return dto.ReporteGeneradoResponse{
		Periodo: fmt.Sprintf("%s %d", periodo.NombreMes(mes), req.Anio),
		Tipo:    ReporteMensual,
	}, nil
}

func (s *reporteService) GenerarAnual(_ context.Context, req dto.GenerarReporteAnualRequest) (dto.ReporteGeneradoResponse, error) {
	now := s.ahora()
	if !periodo.EsAnioAnualElegible(now, req.Anio) {
		return dto.ReporteGeneradoResponse{}, errValidacion("solo se pueden generar reportes de periodos completados")
	}
	return dto.ReporteGeneradoResponse{
		Periodo: fmt.Sprintf("%d", req.Anio),
		Tipo:    ReporteAnual,
	}, nil
}
