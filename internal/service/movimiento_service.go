package service

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"sweetsky/internal/dto"
	"sweetsky/internal/model"
	"sweetsky/internal/repository"
)

type MovimientoService interface {
	Registrar(ctx context.Context, req dto.RegistrarMovimientoRequest) (dto.MovimientoResponse, error)
	Listar(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarMovimientoRequest) (dto.MovimientoResponse, error)
	Resumen(ctx context.Context) (dto.ResumenMovimientosResponse, error)

	// Two-phase delete: a request marks a pending target, a confirmation
	// applies it, a cancellation clears it without mutating the collection.
	SolicitarEliminacion(ctx context.Context, id int64) (dto.MovimientoResponse, error)
	ConfirmarEliminacion(ctx context.Context) error
	CancelarEliminacion(ctx context.Context)
}

type movimientoService struct {
	repo repository.MovimientoRepository

	mu        sync.Mutex
	pendiente *int64 // id awaiting delete confirmation
}

func NewMovimientoService(repo repository.MovimientoRepository) MovimientoService {
	return &movimientoService{repo: repo}
}

func mapMovimiento(m model.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Monto:       m.Monto,
		Descripcion: m.Descripcion,
		Fecha:       m.Fecha,
	}
}

func (s *movimientoService) Registrar(ctx context.Context, req dto.RegistrarMovimientoRequest) (dto.MovimientoResponse, error) {
	if req.Tipo != model.MovimientoIngreso && req.Tipo != model.MovimientoEgreso {
		return dto.MovimientoResponse{}, errValidacion("el tipo debe ser ingreso o egreso")
	}
	if !req.Monto.IsPositive() {
		return dto.MovimientoResponse{}, errValidacion("el monto debe ser mayor que cero")
	}
	if strings.TrimSpace(req.Descripcion) == "" {
		return dto.MovimientoResponse{}, errValidacion("la descripcion es obligatoria")
	}

	m := &model.Movimiento{
		Tipo:        req.Tipo,
		Monto:       req.Monto,
		Descripcion: strings.TrimSpace(req.Descripcion),
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.MovimientoResponse{}, err
	}
	return mapMovimiento(*m), nil
}

func (s *movimientoService) Listar(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(items))
	for _, m := range items {
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, mapMovimiento(m))
	}
	return out, nil
}

func (s *movimientoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarMovimientoRequest) (dto.MovimientoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.MovimientoResponse{}, ErrNoEncontrado
	}

	if req.Tipo != nil {
		if *req.Tipo != model.MovimientoIngreso && *req.Tipo != model.MovimientoEgreso {
			return dto.MovimientoResponse{}, errValidacion("el tipo debe ser ingreso o egreso")
		}
		m.Tipo = *req.Tipo
	}
	if req.Monto != nil {
		if !req.Monto.IsPositive() {
			return dto.MovimientoResponse{}, errValidacion("el monto debe ser mayor que cero")
		}
		m.Monto = *req.Monto
	}
	if req.Descripcion != nil {
		if strings.TrimSpace(*req.Descripcion) == "" {
			return dto.MovimientoResponse{}, errValidacion("la descripcion es obligatoria")
		}
		m.Descripcion = strings.TrimSpace(*req.Descripcion)
	}

	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.MovimientoResponse{}, err
	}
	return mapMovimiento(*m), nil
}

func (s *movimientoService) Resumen(ctx context.Context) (dto.ResumenMovimientosResponse, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return dto.ResumenMovimientosResponse{}, err
	}
	ingresos := decimal.Zero
	egresos := decimal.Zero
	for _, m := range items {
		switch m.Tipo {
		case model.MovimientoIngreso:
			ingresos = ingresos.Add(m.Monto)
		case model.MovimientoEgreso:
			egresos = egresos.Add(m.Monto)
		}
	}
	return dto.ResumenMovimientosResponse{
		TotalIngresos: ingresos,
		TotalEgresos:  egresos,
		Balance:       ingresos.Sub(egresos),
	}, nil
}

func (s *movimientoService) SolicitarEliminacion(ctx context.Context, id int64) (dto.MovimientoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.MovimientoResponse{}, ErrNoEncontrado
	}
	s.mu.Lock()
	s.pendiente = &id
	s.mu.Unlock()
	return mapMovimiento(*m), nil
}

func (s *movimientoService) ConfirmarEliminacion(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendiente == nil {
		return errValidacion("no hay ninguna eliminacion pendiente")
	}
	id := *s.pendiente
	s.pendiente = nil
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return ErrNoEncontrado
	}
	return nil
}

func (s *movimientoService) CancelarEliminacion(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendiente = nil
}
