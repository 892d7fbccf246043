package repository

// Almacen aggregates every registry behind the API. It replaces the
// database handle of a persisted system as the thing the router wires
// services against.
type Almacen struct {
	Productos      CatalogoRepository
	Salsas         CatalogoRepository
	Toppings       CatalogoRepository
	Presentaciones PresentacionRepository
	Promociones    PromocionRepository
	Movimientos    MovimientoRepository
	Usuarios       UsuarioRepository
}

// NuevoAlmacen builds all registries pre-loaded with the seed fixtures.
func NuevoAlmacen() *Almacen {
	return &Almacen{
		Productos:      NewCatalogoRepository(seedProductos()),
		Salsas:         NewCatalogoRepository(seedSalsas()),
		Toppings:       NewCatalogoRepository(seedToppings()),
		Presentaciones: NewPresentacionRepository(seedPresentaciones()),
		Promociones:    NewPromocionRepository(seedPromociones()),
		Movimientos:    NewMovimientoRepository(seedMovimientos()),
		Usuarios:       NewUsuarioRepository(seedUsuarios()),
	}
}

// NuevoAlmacenVacio builds empty registries. Used by tests that exercise
// first-id allocation and isolation from the seed data.
func NuevoAlmacenVacio() *Almacen {
	return &Almacen{
		Productos:      NewCatalogoRepository(nil),
		Salsas:         NewCatalogoRepository(nil),
		Toppings:       NewCatalogoRepository(nil),
		Presentaciones: NewPresentacionRepository(nil),
		Promociones:    NewPromocionRepository(nil),
		Movimientos:    NewMovimientoRepository(nil),
		Usuarios:       NewUsuarioRepository(nil),
	}
}
