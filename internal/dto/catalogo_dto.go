package dto

// Shared DTOs for the three name-only catalogs (productos, salsas, toppings).

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearItemCatalogoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=120"`
}

type ActualizarItemCatalogoRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2,max=120"`
	Activo *bool   `json:"activo"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ItemCatalogoFilter narrows listings by active state:
// "true" = activos, "false" = inactivos, anything else = todos.
type ItemCatalogoFilter struct {
	Activo string `form:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemCatalogoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}
