package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetsky/internal/dto"
)

func relojFijo(anio int, mes time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(anio, mes, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestPeriodos_Abril2025(t *testing.T) {
	svc := NewReporteService(relojFijo(2025, time.April))

	resp, err := svc.Periodos(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024}, resp.AniosMensuales)
	assert.Equal(t, []int{2024, 2023, 2022}, resp.AniosAnuales)
	require.Len(t, resp.MesesElegibles, 3) // Enero..Marzo
	assert.Equal(t, "Marzo", resp.MesesElegibles[2].Nombre)
	assert.Equal(t, 2025, resp.SeleccionPorDefecto.Anio)
	assert.Equal(t, 2, resp.SeleccionPorDefecto.Mes)
}

func TestPeriodos_AnioPasado(t *testing.T) {
	svc := NewReporteService(relojFijo(2025, time.April))
	resp, err := svc.Periodos(context.Background(), 2024)
	require.NoError(t, err)
	assert.Len(t, resp.MesesElegibles, 12)
}

func TestPeriodos_EneroRetrocede(t *testing.T) {
	svc := NewReporteService(relojFijo(2025, time.January))
	resp, err := svc.Periodos(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, resp.MesesElegibles)
	assert.Equal(t, 2024, resp.SeleccionPorDefecto.Anio)
	assert.Equal(t, 11, resp.SeleccionPorDefecto.Mes)
}

func TestGenerarMensual(t *testing.T) {
	svc := NewReporteService(relojFijo(2025, time.May))
	ctx := context.Background()

	mes := 3 // Abril
	resp, err := svc.GenerarMensual(ctx, dto.GenerarReporteMensualRequest{Anio: 2025, Mes: &mes})
	require.NoError(t, err)
	assert.Equal(t, "Abril 2025", resp.Periodo)
	assert.Equal(t, ReporteMensual, resp.Tipo)
}

func TestGenerarMensual_PeriodoNoCompletado(t *testing.T) {
	svc := NewReporteService(relojFijo(2025, time.April))
	ctx := context.Background()
	var valErr *ValidacionError

	// el mes en curso nunca es reportable
	abril := 3
	_, err := svc.GenerarMensual(ctx, dto.GenerarReporteMensualRequest{Anio: 2025, Mes: &abril})
	assert.ErrorAs(t, err, &valErr)

	// un mes futuro tampoco
	dic := 11
	_, err = svc.GenerarMensual(ctx, dto.GenerarReporteMensualRequest{Anio: 2025, Mes: &dic})
	assert.ErrorAs(t, err, &valErr)

	// sin mes no hay nada que generar
	_, err = svc.GenerarMensual(ctx, dto.GenerarReporteMensualRequest{Anio: 2025})
	assert.ErrorAs(t, err, &valErr)
}

func TestGenerarAnual(t *testing.T) {
	svc := NewReporteService(relojFijo(2025, time.April))
	ctx := context.Background()

	resp, err := svc.GenerarAnual(ctx, dto.GenerarReporteAnualRequest{Anio: 2024})
	require.NoError(t, err)
	assert.Equal(t, "2024", resp.Periodo)
	assert.Equal(t, ReporteAnual, resp.Tipo)

	var valErr *ValidacionError
	// el anio en curso queda excluido
	_, err = svc.GenerarAnual(ctx, dto.GenerarReporteAnualRequest{Anio: 2025})
	assert.ErrorAs(t, err, &valErr)
	// y mas alla de la ventana de tres anios tambien
	_, err = svc.GenerarAnual(ctx, dto.GenerarReporteAnualRequest{Anio: 2021})
	assert.ErrorAs(t, err, &valErr)
}
