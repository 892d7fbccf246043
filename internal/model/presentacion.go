package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Presentacion is a sellable packaging of a product (e.g. a dozen cupcakes)
// with its own price and description. It must reference an active product at
// creation time; the reference is not re-validated if the product is later
// deactivated.
type Presentacion struct {
	ID          int64
	ProductoID  int64
	Nombre      string
	Cantidad    int
	Precio      decimal.Decimal
	Descripcion string
	ImagenURL   string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
