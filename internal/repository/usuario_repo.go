package repository

import (
	"context"
	"sync"

	"sweetsky/internal/model"
)

// UsuarioRepository resolves dashboard users. The collection is the fixed
// list seeded at startup; no write operations exist.
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id int64) (*model.Usuario, error)
}

type usuarioRepo struct {
	mu    sync.RWMutex
	users []model.Usuario
}

func NewUsuarioRepository(seed []model.Usuario) UsuarioRepository {
	return &usuarioRepo{users: append([]model.Usuario(nil), seed...)}
}

func (r *usuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *usuarioRepo) FindByID(_ context.Context, id int64) (*model.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNoEncontrado
}
