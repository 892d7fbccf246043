package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion is a time-bounded discount over one presentation, optionally
// bundled with two-for-one add-ons for toppings and sauces.
//
// PrecioOriginal is a snapshot of the presentation price taken when the
// promotion is created or edited. The discounted price is never stored: it
// is derived from {PrecioOriginal, DescuentoPct} every time the promotion
// is read.
type Promocion struct {
	ID                int64
	Titulo            string
	PresentacionID    int64
	DescuentoPct      decimal.Decimal
	PrecioOriginal    decimal.Decimal
	DosPorUnoToppings bool
	DosPorUnoSalsas   bool
	Activo            bool
	FechaInicio       time.Time
	// FechaFin nil means the promotion is open-ended.
	FechaFin  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
