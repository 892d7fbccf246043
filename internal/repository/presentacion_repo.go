package repository

import (
	"context"
	"sync"
	"time"

	"sweetsky/internal/model"
)

type PresentacionRepository interface {
	Crear(ctx context.Context, p *model.Presentacion) error
	Listar(ctx context.Context) ([]model.Presentacion, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Presentacion, error)
	Actualizar(ctx context.Context, p *model.Presentacion) error
	ToggleActivo(ctx context.Context, id int64) (*model.Presentacion, error)
}

type presentacionRepo struct {
	mu     sync.RWMutex
	items  []model.Presentacion
	nextID int64
}

func NewPresentacionRepository(seed []model.Presentacion) PresentacionRepository {
	r := &presentacionRepo{items: append([]model.Presentacion(nil), seed...), nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *presentacionRepo) Crear(_ context.Context, p *model.Presentacion) error {
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

func (r *presentacionRepo) Listar(_ context.Context) ([]model.Presentacion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Presentacion(nil), r.items...), nil
}

func (r *presentacionRepo) ObtenerPorID(_ context.Context, id int64) (*model.Presentacion, error) {
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

func (r *presentacionRepo) Actualizar(_ context.Context, p *model.Presentacion) error {
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

func (r *presentacionRepo) ToggleActivo(_ context.Context, id int64) (*model.Presentacion, error) {
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
