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

func buildPresentacionSvc() (PresentacionService, *repository.Almacen) {
	alm := repository.NuevoAlmacen()
	return NewPresentacionService(alm.Presentaciones, alm.Productos), alm
}

func TestCrearPresentacion(t *testing.T) {
	svc, _ := buildPresentacionSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearPresentacionRequest{
		ProductoID:  4, // Brownie, activo
		Nombre:      "Brownies x9",
		Cantidad:    9,
		Precio:      decimal.NewFromInt(27000),
		Descripcion: "Caja de nueve brownies con nuez",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Brownie", resp.Producto)
	assert.True(t, resp.Activo)
}

func TestCrearPresentacion_ProductoInactivo(t *testing.T) {
	svc, _ := buildPresentacionSvc()

	// producto 3 (Galletas de Avena) esta inactivo en la semilla
	_, err := svc.Crear(context.Background(), dto.CrearPresentacionRequest{
		ProductoID:  3,
		Nombre:      "Galletas x12",
		Cantidad:    12,
		Precio:      decimal.NewFromInt(9000),
		Descripcion: "Docena de galletas",
	})
	var valErr *ValidacionError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Detalle, "inactivo")
}

func TestCrearPresentacion_ProductoInexistente(t *testing.T) {
	svc, _ := buildPresentacionSvc()
	_, err := svc.Crear(context.Background(), dto.CrearPresentacionRequest{
		ProductoID:  42,
		Nombre:      "Sin producto",
		Cantidad:    1,
		Precio:      decimal.NewFromInt(1000),
		Descripcion: "referencia rota",
	})
	var valErr *ValidacionError
	assert.ErrorAs(t, err, &valErr)
}

func TestPresentacion_ReferenciaObsoletaSobrevive(t *testing.T) {
	// desactivar el producto despues no invalida la presentacion existente
	svc, alm := buildPresentacionSvc()
	ctx := context.Background()

	_, err := alm.Productos.ToggleActivo(ctx, 1) // Torta de Chocolate → inactivo
	require.NoError(t, err)

	resp, err := svc.ObtenerPorID(ctx, 1) // presentacion sembrada sobre el producto 1
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.Equal(t, "Torta de Chocolate", resp.Producto)
}

func TestActualizarPresentacion_PrecioInvalido(t *testing.T) {
	svc, _ := buildPresentacionSvc()

	cero := decimal.Zero
	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarPresentacionRequest{Precio: &cero})
	var valErr *ValidacionError
	assert.ErrorAs(t, err, &valErr)
}

func TestActualizarPresentacion_CambioDeProductoValida(t *testing.T) {
	svc, _ := buildPresentacionSvc()

	inactivo := int64(3)
	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarPresentacionRequest{ProductoID: &inactivo})
	var valErr *ValidacionError
	assert.ErrorAs(t, err, &valErr)

	activo := int64(4)
	resp, err := svc.Actualizar(context.Background(), 1, dto.ActualizarPresentacionRequest{ProductoID: &activo})
	require.NoError(t, err)
	assert.Equal(t, "Brownie", resp.Producto)
}
