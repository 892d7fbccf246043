package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sweetsky/internal/apierror"
	"sweetsky/internal/dto"
	"sweetsky/internal/service"
)

type MovimientosHandler struct{ svc service.MovimientoService }

func NewMovimientosHandler(svc service.MovimientoService) *MovimientosHandler {
	return &MovimientosHandler{svc: svc}
}

func (h *MovimientosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MovimientosHandler) Listar(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("tipo invalido: use ingreso o egreso"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovimientosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovimientosHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SolicitarEliminacion marks a movement for deletion. Nothing is removed
// until the confirmation arrives.
func (h *MovimientosHandler) SolicitarEliminacion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	mov, err := h.svc.SolicitarEliminacion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.EliminacionPendienteResponse{
		Movimiento: mov,
		Detalle:    "Eliminacion pendiente de confirmacion",
	})
}

func (h *MovimientosHandler) ConfirmarEliminacion(c *gin.Context) {
	if err := h.svc.ConfirmarEliminacion(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovimientosHandler) CancelarEliminacion(c *gin.Context) {
	h.svc.CancelarEliminacion(c.Request.Context())
	c.Status(http.StatusNoContent)
}
