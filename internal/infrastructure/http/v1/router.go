// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"farina/internal/domain/audit"
	"farina/internal/domain/auth"
	"farina/internal/domain/catalogs/cliente"
	"farina/internal/domain/catalogs/mulino"
	"farina/internal/domain/catalogs/prodotto"
	"farina/internal/domain/catalogs/trasportatore"
	"farina/internal/domain/composizione"
	"farina/internal/domain/documents/carico"
	"farina/internal/domain/documents/ordine"
	"farina/internal/domain/prezzi"
	"farina/internal/domain/reports"
	"farina/internal/infrastructure/email"
	"farina/internal/infrastructure/http/v1/handlers"
	"farina/internal/infrastructure/http/v1/middleware"
	"farina/internal/infrastructure/storage/postgres"
	"farina/internal/infrastructure/storage/postgres/catalog_repo"
	"farina/internal/infrastructure/storage/postgres/document_repo"
	"farina/internal/infrastructure/storage/postgres/register_repo"
	"farina/internal/infrastructure/storage/postgres/report_repo"
	"farina/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks).
	Pool *postgres.Pool

	// TxManager runs repository operations and transactions.
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Sender delivers order confirmation emails.
	Sender *email.Sender

	// PrezziCache caches last prices per (cliente, prodotto). May be nil.
	PrezziCache prezzi.Cache

	// CORSOrigin is the allowed origin for browser clients. Empty disables CORS.
	CORSOrigin string

	// RateLimit overrides the default per-client rate limit when set.
	RateLimit *middleware.RateLimitConfig
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.CORSOrigin != "" {
		router.Use(middleware.CORS(cfg.CORSOrigin))
	}
	router.Use(middleware.ErrorHandler())
	rateCfg := middleware.DefaultRateLimitConfig()
	if cfg.RateLimit != nil {
		rateCfg = *cfg.RateLimit
	}
	router.Use(middleware.RateLimit(rateCfg))

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Repos and services are created once; they share the TxManager so
	// cross-aggregate operations (ordine -> prezzi, carico -> ordini) can
	// run in a single transaction.
	clienteRepo := catalog_repo.NewClienteRepo(cfg.TxManager)
	mulinoRepo := catalog_repo.NewMulinoRepo(cfg.TxManager)
	prodottoRepo := catalog_repo.NewProdottoRepo(cfg.TxManager)
	trasportatoreRepo := catalog_repo.NewTrasportatoreRepo(cfg.TxManager)
	ordineRepo := document_repo.NewOrdineRepo(cfg.TxManager)
	caricoRepo := document_repo.NewCaricoRepo(cfg.TxManager)
	prezziRepo := register_repo.NewPrezziRepo(cfg.TxManager)
	reportRepo := report_repo.NewReportRepo(cfg.TxManager)

	prezziService := prezzi.NewService(prezziRepo, cfg.PrezziCache)
	ordineService := ordine.NewService(ordineRepo, clienteRepo, prodottoRepo, mulinoRepo, prezziService, cfg.TxManager)
	caricoService := carico.NewService(caricoRepo, ordineRepo, mulinoRepo, trasportatoreRepo, cfg.TxManager)
	composizioneService := composizione.NewService(ordineRepo, caricoService)
	reportService := reports.NewService(reportRepo)

	ordineService.Hooks().OnBeforeCreate(func(ctx context.Context, doc *ordine.Ordine) error {
		audit.EnrichCreatedByDirect(ctx, &doc.CreatedBy, &doc.UpdatedBy)
		return nil
	})
	ordineService.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *ordine.Ordine) error {
		audit.EnrichUpdatedByDirect(ctx, &doc.UpdatedBy)
		return nil
	})

	baseHandler := handlers.NewBaseHandler()

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, baseHandler, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		// --- CLIENTI ---
		{
			service := cliente.NewService(clienteRepo, cfg.TxManager)
			handler := handlers.NewClienteHandler(baseHandler, service)
			group := protected.Group("/clienti")
			group.GET("/partita-iva/:piva", handler.ByPartitaIVA)
			RegisterCatalogRoutes(group, handler)
		}

		// --- MULINI ---
		{
			service := mulino.NewService(mulinoRepo, cfg.TxManager)
			handler := handlers.NewMulinoHandler(baseHandler, service)
			RegisterCatalogRoutes(protected.Group("/mulini"), handler)
		}

		// --- PRODOTTI ---
		{
			service := prodotto.NewService(prodottoRepo, cfg.TxManager)
			handler := handlers.NewProdottoHandler(baseHandler, service)
			RegisterCatalogRoutes(protected.Group("/prodotti"), handler)
		}

		// --- TRASPORTATORI ---
		{
			service := trasportatore.NewService(trasportatoreRepo, cfg.TxManager)
			handler := handlers.NewTrasportatoreHandler(baseHandler, service)
			RegisterCatalogRoutes(protected.Group("/trasportatori"), handler)
		}

		// --- ORDINI ---
		{
			handler := handlers.NewOrdineHandler(baseHandler, ordineService, cfg.Sender)
			prezziHandler := handlers.NewPrezziHandler(baseHandler, prezziService)
			group := protected.Group("/ordini")
			group.GET("", handler.List)
			group.POST("", handler.Create)
			// Static route must be registered before the :id wildcard.
			group.GET("/mail-config", handler.MailConfig)
			group.GET("/ultimo-prezzo/:clienteId/:prodottoId", prezziHandler.UltimoPerOrdine)
			group.GET("/:id", handler.Get)
			group.PUT("/:id", handler.Update)
			group.DELETE("/:id", handler.Delete)
			group.POST("/:id/invia-email", handler.InviaEmail)
		}

		// --- CARICHI ---
		{
			handler := handlers.NewCaricoHandler(baseHandler, caricoService)
			group := protected.Group("/carichi")
			group.GET("", handler.List)
			group.POST("", handler.CreateBozza)
			group.GET("/aperti", handler.Aperti)
			group.GET("/bozze", handler.Bozze)
			group.POST("/da-ordine-grande", handler.DaOrdineGrande)
			group.POST("/valida", handler.Valida)
			group.GET("/:id", handler.Get)
			group.DELETE("/:id", handler.Delete)
			group.GET("/:id/ordini", handler.Ordini)
			group.GET("/:id/ordini-disponibili", handler.OrdiniDisponibili)
			group.POST("/:id/ordini", handler.AggiungiOrdini)
			group.DELETE("/:id/ordini/:ordineId", handler.RimuoviOrdine)
			group.POST("/:id/assegna-trasportatore", handler.AssegnaTrasportatore)
			group.POST("/:id/ritira", handler.Ritira)
			group.POST("/:id/consegna", handler.Consegna)
		}

		// --- COMPOSIZIONE CARICHI ---
		{
			handler := handlers.NewComposizioneHandler(baseHandler, composizioneService)
			group := protected.Group("/composizione-carichi")
			group.GET("/ordini-disponibili", handler.OrdiniDisponibili)
			group.GET("/mulini-con-ordini", handler.MuliniConOrdini)
			group.GET("/suggerimenti", handler.Suggerimenti)
			group.POST("/crea", handler.Crea)
		}

		// --- PREZZI ---
		{
			handler := handlers.NewPrezziHandler(baseHandler, prezziService)
			group := protected.Group("/prezzi")
			group.GET("/ultimo", handler.Ultimo)
			group.GET("/storico/:clienteId", handler.StoricoCliente)
		}

		// --- PAGAMENTI ---
		{
			handler := handlers.NewReportsHandler(baseHandler, reportService)
			group := protected.Group("/pagamenti")
			group.GET("/riba-in-scadenza", handler.RibaInScadenza)
			group.GET("/provvigioni", handler.Provvigioni)
			group.GET("/provvigioni/ordini", handler.ProvvigioniOrdini)
			group.GET("/provvigioni/export", handler.ProvvigioniExport)

			stats := protected.Group("/statistiche")
			stats.GET("/riepilogo", handler.Riepilogo)
			stats.GET("/top-clienti", handler.TopClienti)
		}
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}
