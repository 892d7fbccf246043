package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetsky/internal/config"
	"sweetsky/internal/dto"
	"sweetsky/internal/repository"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:               8000,
		Env:                "development",
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		RateLimitPerMinute: 1000,
	}
	return New(cfg, repository.NuevoAlmacen())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "admin@sweetsky.com",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealth(t *testing.T) {
	r := setupRouter()
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	r := setupRouter()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "admin@sweetsky.com",
		"password": "equivocada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "credenciales invalidas")
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	r := setupRouter()
	w := doJSON(t, r, http.MethodGet, "/v1/productos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFlujoCompleto_LoginYListados(t *testing.T) {
	r := setupRouter()
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/productos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var productos []dto.ItemCatalogoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productos))
	assert.Len(t, productos, 6)

	w = doJSON(t, r, http.MethodGet, "/v1/promociones?estado=activo", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var promos []dto.PromocionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promos))
	assert.Len(t, promos, 3)

	w = doJSON(t, r, http.MethodGet, "/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, "310000", dash.Resumen.Balance.String())
}

func TestLogout_RevocaElToken(t *testing.T) {
	r := setupRouter()
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// el mismo token ya no sirve aunque no haya expirado
	w = doJSON(t, r, http.MethodGet, "/v1/productos", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCrearPromocion_TituloVacio422(t *testing.T) {
	r := setupRouter()
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/promociones", token, gin.H{
		"titulo":          "",
		"presentacion_id": 1,
		"descuento_pct":   "15",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMovimientos_ResumenYDosFases(t *testing.T) {
	r := setupRouter()
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/movimientos/resumen", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resumen dto.ResumenMovimientosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumen))
	assert.Equal(t, "355000", resumen.TotalIngresos.String())

	// solicitar y confirmar la eliminacion del egreso sembrado
	w = doJSON(t, r, http.MethodDelete, "/v1/movimientos/3", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/movimientos/eliminacion/confirmar", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/movimientos/resumen", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumen))
	assert.Equal(t, "0", resumen.TotalEgresos.String())
}

func TestReportes_Periodos(t *testing.T) {
	r := setupRouter()
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/reportes/periodos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PeriodosReporteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.AniosMensuales, 2)
	assert.Len(t, resp.AniosAnuales, 3)
}

func TestRecursoInexistente404(t *testing.T) {
	r := setupRouter()
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/salsas/99", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
