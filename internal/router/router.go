package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"sweetsky/internal/config"
	"sweetsky/internal/handler"
	"sweetsky/internal/middleware"
	"sweetsky/internal/repository"
	"sweetsky/internal/service"
	"sweetsky/internal/session"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository (in-memory registries)
func New(cfg *config.Config, alm *repository.Almacen) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Session store ────────────────────────────────────────────────────────
	sesiones := session.NewStore()

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(alm.Usuarios, sesiones, cfg)
	productoSvc := service.NewCatalogoService(alm.Productos, "producto")
	salsaSvc := service.NewCatalogoService(alm.Salsas, "salsa")
	toppingSvc := service.NewCatalogoService(alm.Toppings, "topping")
	presentacionSvc := service.NewPresentacionService(alm.Presentaciones, alm.Productos)
	promocionSvc := service.NewPromocionService(alm.Promociones, alm.Presentaciones)
	movimientoSvc := service.NewMovimientoService(alm.Movimientos)
	reporteSvc := service.NewReporteService(time.Now)
	dashboardSvc := service.NewDashboardService(movimientoSvc, promocionSvc, presentacionSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewCatalogoHandler(productoSvc)
	salsasH := handler.NewCatalogoHandler(salsaSvc)
	toppingsH := handler.NewCatalogoHandler(toppingSvc)
	presentacionesH := handler.NewPresentacionesHandler(presentacionSvc)
	promocionesH := handler.NewPromocionesHandler(promocionSvc)
	movimientosH := handler.NewMovimientosHandler(movimientoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health())
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret, sesiones))
	{
		v1.POST("/auth/logout", authH.Logout)

		montarCatalogo(v1.Group("/productos"), productosH)
		montarCatalogo(v1.Group("/salsas"), salsasH)
		montarCatalogo(v1.Group("/toppings"), toppingsH)

		pres := v1.Group("/presentaciones")
		{
			pres.POST("", presentacionesH.Crear)
			pres.GET("", presentacionesH.Listar)
			pres.GET("/:id", presentacionesH.ObtenerPorID)
			pres.PUT("/:id", presentacionesH.Actualizar)
			pres.PATCH("/:id/toggle", presentacionesH.ToggleActivo)
		}

		promos := v1.Group("/promociones")
		{
			promos.POST("", promocionesH.Crear)
			promos.GET("", promocionesH.Listar)
			promos.GET("/:id", promocionesH.ObtenerPorID)
			promos.PUT("/:id", promocionesH.Actualizar)
			promos.PATCH("/:id/toggle", promocionesH.ToggleActivo)
		}

		movs := v1.Group("/movimientos")
		{
			movs.POST("", movimientosH.Registrar)
			movs.GET("", movimientosH.Listar)
			movs.GET("/resumen", movimientosH.Resumen)
			movs.PUT("/:id", movimientosH.Actualizar)
			// Two-phase delete
			movs.DELETE("/:id", movimientosH.SolicitarEliminacion)
			movs.POST("/eliminacion/confirmar", movimientosH.ConfirmarEliminacion)
			movs.POST("/eliminacion/cancelar", movimientosH.CancelarEliminacion)
		}

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/periodos", reportesH.Periodos)
			reportes.POST("/mensual", reportesH.GenerarMensual)
			reportes.POST("/anual", reportesH.GenerarAnual)
		}

		v1.GET("/dashboard", dashboardH.Resumen)
	}

	return r
}

// montarCatalogo mounts the shared CRUD quartet for a name-only catalog.
func montarCatalogo(g *gin.RouterGroup, h *handler.CatalogoHandler) {
	g.POST("", h.Crear)
	g.GET("", h.Listar)
	g.GET("/:id", h.ObtenerPorID)
	g.PUT("/:id", h.Actualizar)
	g.PATCH("/:id/toggle", h.ToggleActivo)
}
