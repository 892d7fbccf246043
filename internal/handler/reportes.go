package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweetsky/internal/apierror"
	"sweetsky/internal/dto"
	"sweetsky/internal/service"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Periodos returns the selectable years and months for the report screen.
// The optional ?anio= narrows the eligible-month list to that year.
func (h *ReportesHandler) Periodos(c *gin.Context) {
	anio := 0
	if raw := c.Query("anio"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("anio invalido"))
			return
		}
		anio = parsed
	}
	resp, err := h.svc.Periodos(c.Request.Context(), anio)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) GenerarMensual(c *gin.Context) {
	var req dto.GenerarReporteMensualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerarMensual(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) GenerarAnual(c *gin.Context) {
	var req dto.GenerarReporteAnualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerarAnual(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
