package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"sweetsky/internal/model"
)

// Seed data for the in-memory registries. These are the catalogs the
// dashboard ships with; there is no persistence, so every process starts
// from this state.

func seedProductos() []model.ItemCatalogo {
	return []model.ItemCatalogo{
		{ID: 1, Nombre: "Torta de Chocolate", Activo: true},
		{ID: 2, Nombre: "Cupcake de Vainilla", Activo: true},
		{ID: 3, Nombre: "Galletas de Avena", Activo: false},
		{ID: 4, Nombre: "Brownie", Activo: true},
		{ID: 5, Nombre: "Donitas", Activo: true},
		{ID: 6, Nombre: "Pastel de Fresa", Activo: true},
	}
}

func seedSalsas() []model.ItemCatalogo {
	return []model.ItemCatalogo{
		{ID: 1, Nombre: "Chocolate", Activo: true},
		{ID: 2, Nombre: "Fresa", Activo: true},
		{ID: 3, Nombre: "Caramelo", Activo: false},
		{ID: 4, Nombre: "Arequipe", Activo: true},
	}
}

func seedToppings() []model.ItemCatalogo {
	return []model.ItemCatalogo{
		{ID: 1, Nombre: "Chispas de Chocolate", Activo: true},
		{ID: 2, Nombre: "Nueces", Activo: true},
		{ID: 3, Nombre: "Fresas", Activo: false},
		{ID: 4, Nombre: "Coco Rallado", Activo: true},
	}
}

const imagenPlaceholder = "/placeholder.svg?height=200&width=200"

func seedPresentaciones() []model.Presentacion {
	return []model.Presentacion{
		{
			ID: 1, ProductoID: 1, Nombre: "Torta Chocolate Premium",
			Cantidad: 1, Precio: decimal.NewFromInt(45000),
			Descripcion: "Deliciosa torta de chocolate para 10 personas",
			ImagenURL:   imagenPlaceholder, Activo: true,
		},
		{
			ID: 2, ProductoID: 2, Nombre: "Cupcakes Vainilla Clasicos",
			Cantidad: 12, Precio: decimal.NewFromInt(35000),
			Descripcion: "Docena de cupcakes de vainilla con frosting",
			ImagenURL:   imagenPlaceholder, Activo: true,
		},
		{
			ID: 3, ProductoID: 3, Nombre: "Galletas Avena Familiar",
			Cantidad: 24, Precio: decimal.NewFromInt(18000),
			Descripcion: "Paquete de 24 galletas de avena con pasas",
			ImagenURL:   imagenPlaceholder, Activo: true,
		},
		{
			ID: 4, ProductoID: 5, Nombre: "Donitas Glaseadas",
			Cantidad: 6, Precio: decimal.NewFromInt(12000),
			Descripcion: "Media docena de donitas glaseadas",
			ImagenURL:   imagenPlaceholder, Activo: true,
		},
	}
}

func seedPromociones() []model.Promocion {
	fin1 := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)
	fin3 := time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)
	fin4 := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
	return []model.Promocion{
		{
			ID: 1, Titulo: "Oferta Especial Torta de Chocolate", PresentacionID: 1,
			DescuentoPct: decimal.NewFromInt(15), PrecioOriginal: decimal.NewFromInt(45000),
			DosPorUnoToppings: true, Activo: false,
			FechaInicio: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), FechaFin: &fin1,
		},
		{
			ID: 2, Titulo: "Promocion Cupcakes", PresentacionID: 2,
			DescuentoPct: decimal.NewFromInt(10), PrecioOriginal: decimal.NewFromInt(35000),
			DosPorUnoSalsas: true, Activo: true,
			FechaInicio: time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 3, Titulo: "Descuento en Galletas de Avena", PresentacionID: 3,
			DescuentoPct: decimal.NewFromInt(20), PrecioOriginal: decimal.NewFromInt(18000),
			Activo:      true,
			FechaInicio: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), FechaFin: &fin3,
		},
		{
			ID: 4, Titulo: "Promocion Donitas Glaseadas", PresentacionID: 4,
			DescuentoPct: decimal.NewFromInt(25), PrecioOriginal: decimal.NewFromInt(12000),
			DosPorUnoToppings: true, Activo: true,
			FechaInicio: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC), FechaFin: &fin4,
		},
		{
			ID: 5, Titulo: "Oferta Especial Cupcakes y Donitas", PresentacionID: 2,
			DescuentoPct: decimal.NewFromInt(30), PrecioOriginal: decimal.NewFromInt(35000),
			DosPorUnoToppings: true, DosPorUnoSalsas: true, Activo: false,
			FechaInicio: time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedMovimientos() []model.Movimiento {
	return []model.Movimiento{
		{
			ID: 1, Tipo: model.MovimientoIngreso, Monto: decimal.NewFromInt(150000),
			Descripcion: "Venta de torta de chocolate",
			Fecha:       time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Tipo: model.MovimientoIngreso, Monto: decimal.NewFromInt(85000),
			Descripcion: "Venta de cupcakes",
			Fecha:       time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 3, Tipo: model.MovimientoEgreso, Monto: decimal.NewFromInt(45000),
			Descripcion: "Compra de insumos",
			Fecha:       time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 4, Tipo: model.MovimientoIngreso, Monto: decimal.NewFromInt(120000),
			Descripcion: "Venta de galletas",
			Fecha:       time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}

// seedUsuarios hashes the fixed credential list at seed time. The plaintext
// pairs are part of the product definition (login stub, not a security
// boundary); hashing keeps the comparison path uniform.
func seedUsuarios() []model.Usuario {
	fijos := []struct {
		id       int64
		email    string
		password string
		nombre   string
	}{
		{1, "admin@sweetsky.com", "admin", "Administrador"},
		{2, "user1@sweetsky.com", "user1pass", "Usuario 1"},
		{3, "user2@sweetsky.com", "user2pass", "Usuario 2"},
	}

	users := make([]model.Usuario, 0, len(fijos))
	for _, f := range fijos {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			panic(err) // cannot happen with a valid cost
		}
		users = append(users, model.Usuario{
			ID: f.id, Email: f.email, Nombre: f.nombre, PasswordHash: string(hash),
		})
	}
	return users
}
