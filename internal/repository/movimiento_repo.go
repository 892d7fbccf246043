package repository

import (
	"context"
	"sync"
	"time"

	"sweetsky/internal/model"
)

type MovimientoRepository interface {
	Crear(ctx context.Context, m *model.Movimiento) error
	Listar(ctx context.Context) ([]model.Movimiento, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Movimiento, error)
	Actualizar(ctx context.Context, m *model.Movimiento) error
	// Eliminar removes the movement. The freed id is never reassigned.
	Eliminar(ctx context.Context, id int64) error
}

type movimientoRepo struct {
	mu     sync.RWMutex
	items  []model.Movimiento
	nextID int64
}

func NewMovimientoRepository(seed []model.Movimiento) MovimientoRepository {
	r := &movimientoRepo{items: append([]model.Movimiento(nil), seed...), nextID: 1}
	for _, m := range seed {
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
	return r
}

func (r *movimientoRepo) Crear(_ context.Context, m *model.Movimiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	now := time.Now()
	if m.Fecha.IsZero() {
		m.Fecha = now
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	r.items = append(r.items, *m)
	return nil
}

func (r *movimientoRepo) Listar(_ context.Context) ([]model.Movimiento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Movimiento(nil), r.items...), nil
}

func (r *movimientoRepo) ObtenerPorID(_ context.Context, id int64) (*model.Movimiento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			m := r.items[i]
			return &m, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *movimientoRepo) Actualizar(_ context.Context, m *model.Movimiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == m.ID {
			m.UpdatedAt = time.Now()
			r.items[i] = *m
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *movimientoRepo) Eliminar(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNoEncontrado
}
