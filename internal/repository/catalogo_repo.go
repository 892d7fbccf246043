package repository

import (
	"context"
	"sync"
	"time"

	"sweetsky/internal/model"
)

// CatalogoRepository is the data access contract shared by the three simple
// catalogs (productos, salsas, toppings). Services depend on this interface,
// not on the in-memory implementation.
type CatalogoRepository interface {
	Crear(ctx context.Context, item *model.ItemCatalogo) error
	Listar(ctx context.Context) ([]model.ItemCatalogo, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.ItemCatalogo, error)
	Actualizar(ctx context.Context, item *model.ItemCatalogo) error
	ToggleActivo(ctx context.Context, id int64) (*model.ItemCatalogo, error)
}

type catalogoRepo struct {
	mu     sync.RWMutex
	items  []model.ItemCatalogo
	nextID int64
}

// NewCatalogoRepository builds a registry pre-loaded with seed items.
// Instantiated once per catalog.
func NewCatalogoRepository(seed []model.ItemCatalogo) CatalogoRepository {
	r := &catalogoRepo{items: append([]model.ItemCatalogo(nil), seed...), nextID: 1}
	for _, it := range seed {
		if it.ID >= r.nextID {
			r.nextID = it.ID + 1
		}
	}
	return r
}

func (r *catalogoRepo) Crear(_ context.Context, item *model.ItemCatalogo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append(r.items, *item)
	return nil
}

func (r *catalogoRepo) Listar(_ context.Context) ([]model.ItemCatalogo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ItemCatalogo(nil), r.items...), nil
}

func (r *catalogoRepo) ObtenerPorID(_ context.Context, id int64) (*model.ItemCatalogo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *catalogoRepo) Actualizar(_ context.Context, item *model.ItemCatalogo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			item.UpdatedAt = time.Now()
			r.items[i] = *item
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *catalogoRepo) ToggleActivo(_ context.Context, id int64) (*model.ItemCatalogo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Activo = !r.items[i].Activo
			r.items[i].UpdatedAt = time.Now()
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrNoEncontrado
}
