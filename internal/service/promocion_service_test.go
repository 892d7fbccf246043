package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetsky/internal/dto"
	"sweetsky/internal/repository"
)

func buildPromocionSvc() PromocionService {
	alm := repository.NuevoAlmacen()
	return NewPromocionService(alm.Promociones, alm.Presentaciones)
}

func TestCrearPromocion_SnapshotYPrecioDerivado(t *testing.T) {
	svc := buildPromocionSvc()

	// presentacion 1 vale 45000; 15% → 38250
	resp, err := svc.Crear(context.Background(), dto.CrearPromocionRequest{
		Titulo:         "Semana Dulce",
		PresentacionID: 1,
		DescuentoPct:   decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.ID) // 5 sembradas, sigue la 6
	assert.Equal(t, "45000", resp.PrecioOriginal.String())
	assert.Equal(t, "38250", resp.PrecioConDescuento.String())
	assert.True(t, resp.Activo)
	assert.Equal(t, "Torta Chocolate Premium", resp.Presentacion)
}

func TestCrearPromocion_TituloVacioNoMuta(t *testing.T) {
	svc := buildPromocionSvc()
	ctx := context.Background()

	antes, err := svc.Listar(ctx, dto.PromocionFilter{})
	require.NoError(t, err)

	_, err = svc.Crear(ctx, dto.CrearPromocionRequest{
		Titulo:         "   ",
		PresentacionID: 1,
		DescuentoPct:   decimal.NewFromInt(10),
	})
	var valErr *ValidacionError
	require.ErrorAs(t, err, &valErr)

	despues, err := svc.Listar(ctx, dto.PromocionFilter{})
	require.NoError(t, err)
	assert.Len(t, despues, len(antes)) // el rechazo no deja rastro
}

func TestCrearPromocion_PresentacionInexistente(t *testing.T) {
	svc := buildPromocionSvc()
	_, err := svc.Crear(context.Background(), dto.CrearPromocionRequest{
		Titulo:         "Promo fantasma",
		PresentacionID: 99,
		DescuentoPct:   decimal.NewFromInt(10),
	})
	var valErr *ValidacionError
	assert.ErrorAs(t, err, &valErr)
}

func TestCrearPromocion_DescuentoFueraDeRango(t *testing.T) {
	svc := buildPromocionSvc()
	_, err := svc.Crear(context.Background(), dto.CrearPromocionRequest{
		Titulo:         "Regalado",
		PresentacionID: 1,
		DescuentoPct:   decimal.NewFromInt(150),
	})
	var valErr *ValidacionError
	assert.ErrorAs(t, err, &valErr)
}

func TestActualizarPromocion_CambioDePresentacionResnapshotea(t *testing.T) {
	svc := buildPromocionSvc()
	ctx := context.Background()

	// promo 1: presentacion 1 (45000) con 15%; moverla a la 2 (35000)
	nuevaPres := int64(2)
	resp, err := svc.Actualizar(ctx, 1, dto.ActualizarPromocionRequest{PresentacionID: &nuevaPres})
	require.NoError(t, err)
	assert.Equal(t, "35000", resp.PrecioOriginal.String())
	// 35000 - 35000*15/100 = 29750
	assert.Equal(t, "29750", resp.PrecioConDescuento.String())
}

func TestActualizarPromocion_SoloDescuentoConservaSnapshot(t *testing.T) {
	svc := buildPromocionSvc()

	pct := decimal.NewFromInt(50)
	resp, err := svc.Actualizar(context.Background(), 1, dto.ActualizarPromocionRequest{DescuentoPct: &pct})
	require.NoError(t, err)
	assert.Equal(t, "45000", resp.PrecioOriginal.String())
	assert.Equal(t, "22500", resp.PrecioConDescuento.String())
}

func TestListarPromociones_FiltroEstado(t *testing.T) {
	svc := buildPromocionSvc()
	ctx := context.Background()

	todas, err := svc.Listar(ctx, dto.PromocionFilter{Estado: "todos"})
	require.NoError(t, err)
	assert.Len(t, todas, 5)

	activas, err := svc.Listar(ctx, dto.PromocionFilter{Estado: "activo"})
	require.NoError(t, err)
	assert.Len(t, activas, 3)

	inactivas, err := svc.Listar(ctx, dto.PromocionFilter{Estado: "inactivo"})
	require.NoError(t, err)
	assert.Len(t, inactivas, 2)
}

func TestTogglePromocion(t *testing.T) {
	svc := buildPromocionSvc()
	ctx := context.Background()

	resp, err := svc.ToggleActivo(ctx, 1) // sembrada inactiva
	require.NoError(t, err)
	assert.True(t, resp.Activo)

	_, err = svc.ToggleActivo(ctx, 99)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
