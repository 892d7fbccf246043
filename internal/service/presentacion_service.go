package service

import (
	"context"
	"strings"

	"sweetsky/internal/dto"
	"sweetsky/internal/model"
	"sweetsky/internal/repository"
)

type PresentacionService interface {
	Crear(ctx context.Context, req dto.CrearPresentacionRequest) (dto.PresentacionResponse, error)
	Listar(ctx context.Context) ([]dto.PresentacionResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.PresentacionResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarPresentacionRequest) (dto.PresentacionResponse, error)
	ToggleActivo(ctx context.Context, id int64) (dto.PresentacionResponse, error)
}

type presentacionService struct {
	repo      repository.PresentacionRepository
	productos repository.CatalogoRepository
}

func NewPresentacionService(repo repository.PresentacionRepository, productos repository.CatalogoRepository) PresentacionService {
	return &presentacionService{repo: repo, productos: productos}
}

// mapPresentacion resolves the product name for display. A stale reference
// (product deactivated after the fact) keeps its name; a dangling one is
// left blank rather than failing the read.
func (s *presentacionService) mapPresentacion(ctx context.Context, p model.Presentacion) dto.PresentacionResponse {
	nombreProducto := ""
	if prod, err := s.productos.ObtenerPorID(ctx, p.ProductoID); err == nil {
		nombreProducto = prod.Nombre
	}
	return dto.PresentacionResponse{
		ID:          p.ID,
		ProductoID:  p.ProductoID,
		Producto:    nombreProducto,
		Nombre:      p.Nombre,
		Cantidad:    p.Cantidad,
		Precio:      p.Precio,
		Descripcion: p.Descripcion,
		ImagenURL:   p.ImagenURL,
		Activo:      p.Activo,
	}
}

// validarProducto enforces the creation-time rule: the referenced product
// must exist and be active. Existing presentations are not re-checked when
// a product is deactivated later.
func (s *presentacionService) validarProducto(ctx context.Context, productoID int64) error {
	prod, err := s.productos.ObtenerPorID(ctx, productoID)
	if err != nil {
		return errValidacion("el producto seleccionado no existe")
	}
	if !prod.Activo {
		return errValidacion("el producto seleccionado esta inactivo")
	}
	return nil
}

func (s *presentacionService) Crear(ctx context.Context, req dto.CrearPresentacionRequest) (dto.PresentacionResponse, error) {
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.Descripcion) == "" {
		return dto.PresentacionResponse{}, errValidacion("todos los campos marcados son obligatorios")
	}
	if err := s.validarProducto(ctx, req.ProductoID); err != nil {
		return dto.PresentacionResponse{}, err
	}

	p := &model.Presentacion{
		ProductoID:  req.ProductoID,
		Nombre:      strings.TrimSpace(req.Nombre),
		Cantidad:    req.Cantidad,
		Precio:      req.Precio,
		Descripcion: strings.TrimSpace(req.Descripcion),
		ImagenURL:   req.ImagenURL,
		Activo:      true,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PresentacionResponse{}, err
	}
	return s.mapPresentacion(ctx, *p), nil
}

func (s *presentacionService) Listar(ctx context.Context) ([]dto.PresentacionResponse, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PresentacionResponse, 0, len(items))
	for _, p := range items {
		out = append(out, s.mapPresentacion(ctx, p))
	}
	return out, nil
}

func (s *presentacionService) ObtenerPorID(ctx context.Context, id int64) (dto.PresentacionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PresentacionResponse{}, ErrNoEncontrado
	}
	return s.mapPresentacion(ctx, *p), nil
}

func (s *presentacionService) Actualizar(ctx context.Context, id int64, req dto.ActualizarPresentacionRequest) (dto.PresentacionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PresentacionResponse{}, ErrNoEncontrado
	}

	if req.ProductoID != nil && *req.ProductoID != p.ProductoID {
		if err := s.validarProducto(ctx, *req.ProductoID); err != nil {
			return dto.PresentacionResponse{}, err
		}
		p.ProductoID = *req.ProductoID
	}
	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			return dto.PresentacionResponse{}, errValidacion("el nombre es obligatorio")
		}
		p.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Cantidad != nil {
		p.Cantidad = *req.Cantidad
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() || req.Precio.IsZero() {
			return dto.PresentacionResponse{}, errValidacion("el precio debe ser mayor que cero")
		}
		p.Precio = *req.Precio
	}
	if req.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.ImagenURL != nil {
		p.ImagenURL = *req.ImagenURL
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.PresentacionResponse{}, err
	}
	return s.mapPresentacion(ctx, *p), nil
}

func (s *presentacionService) ToggleActivo(ctx context.Context, id int64) (dto.PresentacionResponse, error) {
	p, err := s.repo.ToggleActivo(ctx, id)
	if err != nil {
		return dto.PresentacionResponse{}, ErrNoEncontrado
	}
	return s.mapPresentacion(ctx, *p), nil
}
