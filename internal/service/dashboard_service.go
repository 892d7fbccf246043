package service

import (
	"context"
	"sort"

	"sweetsky/internal/dto"
)

// DashboardService composes the landing-page widgets from the other
// services: financial summary, featured promotions and recent movements.
type DashboardService interface {
	Resumen(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	movimientos    MovimientoService
	promociones    PromocionService
	presentaciones PresentacionService
}

func NewDashboardService(movimientos MovimientoService, promociones PromocionService, presentaciones PresentacionService) DashboardService {
	return &dashboardService{
		movimientos:    movimientos,
		promociones:    promociones,
		presentaciones: presentaciones,
	}
}

const maxMovimientosRecientes = 5

func (s *dashboardService) Resumen(ctx context.Context) (dto.DashboardResponse, error) {
	resumen, err := s.movimientos.Resumen(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	destacadas, err := s.promociones.Listar(ctx, dto.PromocionFilter{Estado: "activo"})
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	movs, err := s.movimientos.Listar(ctx, dto.MovimientoFilter{})
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	sort.Slice(movs, func(i, j int) bool { return movs[i].Fecha.After(movs[j].Fecha) })
	if len(movs) > maxMovimientosRecientes {
		movs = movs[:maxMovimientosRecientes]
	}

	presentaciones, err := s.presentaciones.Listar(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	activas := 0
	for _, p := range presentaciones {
		if p.Activo {
			activas++
		}
	}

	return dto.DashboardResponse{
		Resumen:               resumen,
		PromocionesDestacadas: destacadas,
		MovimientosRecientes:  movs,
		PresentacionesActivas: activas,
		PromocionesActivas:    len(destacadas),
	}, nil
}
