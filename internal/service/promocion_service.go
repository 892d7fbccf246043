package service

import (
	"context"
	"strings"
	"time"

	"sweetsky/internal/dto"
	"sweetsky/internal/model"
	"sweetsky/internal/pricing"
	"sweetsky/internal/repository"
)

type PromocionService interface {
	Crear(ctx context.Context, req dto.CrearPromocionRequest) (dto.PromocionResponse, error)
	Listar(ctx context.Context, filter dto.PromocionFilter) ([]dto.PromocionResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.PromocionResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarPromocionRequest) (dto.PromocionResponse, error)
	ToggleActivo(ctx context.Context, id int64) (dto.PromocionResponse, error)
}

type promocionService struct {
	repo           repository.PromocionRepository
	presentaciones repository.PresentacionRepository
}

func NewPromocionService(repo repository.PromocionRepository, presentaciones repository.PresentacionRepository) PromocionService {
	return &promocionService{repo: repo, presentaciones: presentaciones}
}

// mapPromocion derives the discounted price at read time. PrecioOriginal is
// the price snapshot taken when the promotion was created or last edited;
// the derived value can therefore never drift from its sources.
func (s *promocionService) mapPromocion(ctx context.Context, p model.Promocion) dto.PromocionResponse {
	conDescuento, err := pricing.PrecioConDescuento(p.PrecioOriginal, p.DescuentoPct)
	if err != nil {
		// Stored values are range-checked on every write; a failure here
		// means corrupted state, surface the original price unchanged.
		conDescuento = p.PrecioOriginal
	}

	nombrePresentacion := ""
	if pres, err := s.presentaciones.ObtenerPorID(ctx, p.PresentacionID); err == nil {
		nombrePresentacion = pres.Nombre
	}

	return dto.PromocionResponse{
		ID:                 p.ID,
		Titulo:             p.Titulo,
		PresentacionID:     p.PresentacionID,
		Presentacion:       nombrePresentacion,
		DescuentoPct:       p.DescuentoPct,
		PrecioOriginal:     p.PrecioOriginal,
		PrecioConDescuento: conDescuento,
		DosPorUnoToppings:  p.DosPorUnoToppings,
		DosPorUnoSalsas:    p.DosPorUnoSalsas,
		Activo:             p.Activo,
		FechaInicio:        p.FechaInicio,
		FechaFin:           p.FechaFin,
	}
}

func (s *promocionService) Crear(ctx context.Context, req dto.CrearPromocionRequest) (dto.PromocionResponse, error) {
	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return dto.PromocionResponse{}, errValidacion("el titulo es obligatorio")
	}
	pres, err := s.presentaciones.ObtenerPorID(ctx, req.PresentacionID)
	if err != nil {
		return dto.PromocionResponse{}, errValidacion("la presentacion seleccionada no existe")
	}
	// Range check up front so the registry never holds an invalid percentage.
	if _, err := pricing.PrecioConDescuento(pres.Precio, req.DescuentoPct); err != nil {
		return dto.PromocionResponse{}, errValidacion(err.Error())
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	inicio := time.Now()
	if req.FechaInicio != nil {
		inicio = *req.FechaInicio
	}

	p := &model.Promocion{
		Titulo:            titulo,
		PresentacionID:    req.PresentacionID,
		DescuentoPct:      req.DescuentoPct,
		PrecioOriginal:    pres.Precio, // snapshot at creation time
		DosPorUnoToppings: req.DosPorUnoToppings,
		DosPorUnoSalsas:   req.DosPorUnoSalsas,
		Activo:            activo,
		FechaInicio:       inicio,
		FechaFin:          req.FechaFin,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PromocionResponse{}, err
	}
	return s.mapPromocion(ctx, *p), nil
}

func (s *promocionService) Listar(ctx context.Context, filter dto.PromocionFilter) ([]dto.PromocionResponse, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromocionResponse, 0, len(items))
	for _, p := range items {
		switch filter.Estado {
		case "activo":
			if !p.Activo {
				continue
			}
		case "inactivo":
			if p.Activo {
				continue
			}
		}
		out = append(out, s.mapPromocion(ctx, p))
	}
	return out, nil
}

func (s *promocionService) ObtenerPorID(ctx context.Context, id int64) (dto.PromocionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PromocionResponse{}, ErrNoEncontrado
	}
	return s.mapPromocion(ctx, *p), nil
}

func (s *promocionService) Actualizar(ctx context.Context, id int64, req dto.ActualizarPromocionRequest) (dto.PromocionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PromocionResponse{}, ErrNoEncontrado
	}

	if req.Titulo != nil {
		titulo := strings.TrimSpace(*req.Titulo)
		if titulo == "" {
			return dto.PromocionResponse{}, errValidacion("el titulo es obligatorio")
		}
		p.Titulo = titulo
	}
	if req.PresentacionID != nil && *req.PresentacionID != p.PresentacionID {
		pres, err := s.presentaciones.ObtenerPorID(ctx, *req.PresentacionID)
		if err != nil {
			return dto.PromocionResponse{}, errValidacion("la presentacion seleccionada no existe")
		}
		p.PresentacionID = *req.PresentacionID
		p.PrecioOriginal = pres.Precio // re-snapshot on presentation change
	}
	if req.DescuentoPct != nil {
		if _, err := pricing.PrecioConDescuento(p.PrecioOriginal, *req.DescuentoPct); err != nil {
			return dto.PromocionResponse{}, errValidacion(err.Error())
		}
		p.DescuentoPct = *req.DescuentoPct
	}
	if req.DosPorUnoToppings != nil {
		p.DosPorUnoToppings = *req.DosPorUnoToppings
	}
	if req.DosPorUnoSalsas != nil {
		p.DosPorUnoSalsas = *req.DosPorUnoSalsas
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if req.FechaInicio != nil {
		p.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		p.FechaFin = req.FechaFin
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.PromocionResponse{}, err
	}
	return s.mapPromocion(ctx, *p), nil
}

func (s *promocionService) ToggleActivo(ctx context.Context, id int64) (dto.PromocionResponse, error) {
	p, err := s.repo.ToggleActivo(ctx, id)
	if err != nil {
		return dto.PromocionResponse{}, ErrNoEncontrado
	}
	return s.mapPromocion(ctx, *p), nil
}
