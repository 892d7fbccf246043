package dto

// DashboardResponse feeds the dashboard landing widgets: the balance
// summary, the featured (active) promotions and the latest movements.
type DashboardResponse struct {
	Resumen               ResumenMovimientosResponse `json:"resumen"`
	PromocionesDestacadas []PromocionResponse        `json:"promociones_destacadas"`
	MovimientosRecientes  []MovimientoResponse       `json:"movimientos_recientes"`
	PresentacionesActivas int                        `json:"presentaciones_activas"`
	PromocionesActivas    int                        `json:"promociones_activas"`
}
