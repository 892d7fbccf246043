package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetsky/internal/model"
)

func TestCatalogoRepo_PrimerIDEnColeccionVacia(t *testing.T) {
	repo := NewCatalogoRepository(nil)
	item := &model.ItemCatalogo{Nombre: "Torta de Limon", Activo: true}
	require.NoError(t, repo.Crear(context.Background(), item))
	assert.Equal(t, int64(1), item.ID)
}

func TestCatalogoRepo_IDMonotonicoDesdeSemilla(t *testing.T) {
	repo := NewCatalogoRepository(seedProductos()) // ids 1..6
	item := &model.ItemCatalogo{Nombre: "Milhojas", Activo: true}
	require.NoError(t, repo.Crear(context.Background(), item))
	assert.Equal(t, int64(7), item.ID)
}

func TestCatalogoRepo_ToggleActivo(t *testing.T) {
	repo := NewCatalogoRepository([]model.ItemCatalogo{{ID: 1, Nombre: "Brownie", Activo: true}})

	it, err := repo.ToggleActivo(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, it.Activo)

	it, err = repo.ToggleActivo(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, it.Activo)

	_, err = repo.ToggleActivo(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestCatalogoRepo_ListarDevuelveCopia(t *testing.T) {
	repo := NewCatalogoRepository(seedSalsas())
	items, err := repo.Listar(context.Background())
	require.NoError(t, err)

	items[0].Nombre = "mutado"
	otra, _ := repo.Listar(context.Background())
	assert.Equal(t, "Chocolate", otra[0].Nombre)
}

func TestMovimientoRepo_IDLiberadoNoSeReutiliza(t *testing.T) {
	ctx := context.Background()
	repo := NewMovimientoRepository(nil)

	a := &model.Movimiento{Tipo: model.MovimientoIngreso, Monto: decimal.NewFromInt(1000), Descripcion: "venta"}
	b := &model.Movimiento{Tipo: model.MovimientoEgreso, Monto: decimal.NewFromInt(500), Descripcion: "insumos"}
	require.NoError(t, repo.Crear(ctx, a))
	require.NoError(t, repo.Crear(ctx, b))
	assert.Equal(t, int64(2), b.ID)

	require.NoError(t, repo.Eliminar(ctx, b.ID))

	c := &model.Movimiento{Tipo: model.MovimientoIngreso, Monto: decimal.NewFromInt(700), Descripcion: "venta"}
	require.NoError(t, repo.Crear(ctx, c))
	assert.Equal(t, int64(3), c.ID) // el 2 quedo libre pero no vuelve a asignarse
}

func TestMovimientoRepo_EliminarInexistente(t *testing.T) {
	repo := NewMovimientoRepository(seedMovimientos())
	err := repo.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestNuevoAlmacen_Semillas(t *testing.T) {
	ctx := context.Background()
	alm := NuevoAlmacen()

	productos, err := alm.Productos.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, productos, 6)

	promos, err := alm.Promociones.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, promos, 5)

	movs, err := alm.Movimientos.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, movs, 4)

	// las credenciales fijas quedan hasheadas, nunca en claro
	admin, err := alm.Usuarios.FindByEmail(ctx, "admin@sweetsky.com")
	require.NoError(t, err)
	assert.NotEqual(t, "admin", admin.PasswordHash)
	assert.Contains(t, admin.PasswordHash, "$2a$")
}
