package repository

import (
	"context"
	"sync"
	"time"

	"sweetsky/internal/model"
)

type PromocionRepository interface {
	Crear(ctx context.Context, p *model.Promocion) error
	Listar(ctx context.Context) ([]model.Promocion, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Promocion, error)
	Actualizar(ctx context.Context, p *model.Promocion) error
	ToggleActivo(ctx context.Context, id int64) (*model.Promocion, error)
}

type promocionRepo struct {
	mu     sync.RWMutex
	items  []model.Promocion
	nextID int64
}

func NewPromocionRepository(seed []model.Promocion) PromocionRepository {
	r := &promocionRepo{items: append([]model.Promocion(nil), seed...), nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *promocionRepo) Crear(_ context.Context, p *model.Promocion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items = append(r.items, *p)
	return nil
}

func (r *promocionRepo) Listar(_ context.Context) ([]model.Promocion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Promocion(nil), r.items...), nil
}

func (r *promocionRepo) ObtenerPorID(_ context.Context, id int64) (*model.Promocion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *promocionRepo) Actualizar(_ context.Context, p *model.Promocion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.items[i] = *p
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *promocionRepo) ToggleActivo(_ context.Context, id int64) (*model.Promocion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Activo = !r.items[i].Activo
			r.items[i].UpdatedAt = time.Now()
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, ErrNoEncontrado
}
