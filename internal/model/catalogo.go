package model

import "time"

// ItemCatalogo is the shared shape of the three simple catalogs the bakery
// manages: productos, salsas y toppings. Each catalog lives in its own
// registry; the entity shape is identical across the three.
type ItemCatalogo struct {
	ID        int64
	Nombre    string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
