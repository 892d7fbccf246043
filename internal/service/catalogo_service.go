package service

import (
	"context"
	"strings"

	"sweetsky/internal/dto"
	"sweetsky/internal/model"
	"sweetsky/internal/repository"
)

// CatalogoService is the shared business logic for the three name-only
// catalogs. The router instantiates it once per catalog with the matching
// registry and a label used in error messages.
type CatalogoService interface {
	Crear(ctx context.Context, req dto.CrearItemCatalogoRequest) (dto.ItemCatalogoResponse, error)
	Listar(ctx context.Context, filter dto.ItemCatalogoFilter) ([]dto.ItemCatalogoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ItemCatalogoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarItemCatalogoRequest) (dto.ItemCatalogoResponse, error)
	ToggleActivo(ctx context.Context, id int64) (dto.ItemCatalogoResponse, error)
}

type catalogoService struct {
	repo     repository.CatalogoRepository
	etiqueta string // "producto" | "salsa" | "topping"
}

func NewCatalogoService(repo repository.CatalogoRepository, etiqueta string) CatalogoService {
	return &catalogoService{repo: repo, etiqueta: etiqueta}
}

func mapItemCatalogo(it model.ItemCatalogo) dto.ItemCatalogoResponse {
	return dto.ItemCatalogoResponse{ID: it.ID, Nombre: it.Nombre, Activo: it.Activo}
}

func (s *catalogoService) Crear(ctx context.Context, req dto.CrearItemCatalogoRequest) (dto.ItemCatalogoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return dto.ItemCatalogoResponse{}, errValidacion("el nombre es obligatorio")
	}
	item := &model.ItemCatalogo{Nombre: nombre, Activo: true}
	if err := s.repo.Crear(ctx, item); err != nil {
		return dto.ItemCatalogoResponse{}, err
	}
	return mapItemCatalogo(*item), nil
}

func (s *catalogoService) Listar(ctx context.Context, filter dto.ItemCatalogoFilter) ([]dto.ItemCatalogoResponse, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemCatalogoResponse, 0, len(items))
	for _, it := range items {
		switch filter.Activo {
		case "true":
			if !it.Activo {
				continue
			}
		case "false":
			if it.Activo {
				continue
			}
		}
		out = append(out, mapItemCatalogo(it))
	}
	return out, nil
}

func (s *catalogoService) ObtenerPorID(ctx context.Context, id int64) (dto.ItemCatalogoResponse, error) {
	item, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ItemCatalogoResponse{}, ErrNoEncontrado
	}
	return mapItemCatalogo(*item), nil
}

func (s *catalogoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarItemCatalogoRequest) (dto.ItemCatalogoResponse, error) {
	item, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ItemCatalogoResponse{}, ErrNoEncontrado
	}
	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return dto.ItemCatalogoResponse{}, errValidacion("el nombre es obligatorio")
		}
		item.Nombre = nombre
	}
	if req.Activo != nil {
		item.Activo = *req.Activo
	}
	if err := s.repo.Actualizar(ctx, item); err != nil {
		return dto.ItemCatalogoResponse{}, err
	}
	return mapItemCatalogo(*item), nil
}

func (s *catalogoService) ToggleActivo(ctx context.Context, id int64) (dto.ItemCatalogoResponse, error) {
	item, err := s.repo.ToggleActivo(ctx, id)
	if err != nil {
		return dto.ItemCatalogoResponse{}, ErrNoEncontrado
	}
	return mapItemCatalogo(*item), nil
}
