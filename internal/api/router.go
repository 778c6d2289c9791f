package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/datacatalog/metadata-system/docs"
	"github.com/datacatalog/metadata-system/internal/api/handler"
	"github.com/datacatalog/metadata-system/internal/api/middleware"
	"github.com/datacatalog/metadata-system/internal/core/domain"
	"github.com/datacatalog/metadata-system/internal/core/ports"
	"github.com/datacatalog/metadata-system/internal/core/token"
	healthhandlers "github.com/datacatalog/metadata-system/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Mongo and Redis are only used by
// the readiness probe and may be nil in tests.
type Deps struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Codec   *token.Codec
	Logger  zerolog.Logger
	Mongo   *mongo.Database
	Redis   *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Access policy, applied uniformly: GETs on resource collections are public;
// POST/PUT/DELETE require a valid bearer token and a writer role, and auth
// failures are always JSON 401s with a machine-readable code.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	gate := middleware.Auth(deps.Codec)
	writers := middleware.RBAC(domain.WriterRoles...)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)

	// --- Catalog routes ---
	e.GET("/", handler.Home)

	e.GET("/Attribute", catalogHandler.ListAttributes)
	e.POST("/Attribute", catalogHandler.CreateAttribute, gate, writers)
	e.PUT("/Attribute/:id", catalogHandler.UpdateAttribute, gate, writers)
	e.DELETE("/Attribute/:id", catalogHandler.DeleteAttribute, gate, writers)

	e.GET("/Business-Term-Owner", catalogHandler.ListBusinessTermOwners)
	e.POST("/Business-Term-Owner", catalogHandler.CreateBusinessTermOwner, gate, writers)
	e.PUT("/Business-Term-Owner/:code", catalogHandler.UpdateBusinessTermOwner, gate, writers)
	e.DELETE("/Business-Term-Owner/:code", catalogHandler.DeleteBusinessTermOwner, gate, writers)

	e.GET("/Entity", catalogHandler.ListEntities)
	e.POST("/Entity", catalogHandler.CreateEntity, gate, writers)
	e.PUT("/Entity/:id", catalogHandler.UpdateEntity, gate, writers)
	e.DELETE("/Entity/:id", catalogHandler.DeleteEntity, gate, writers)

	e.GET("/Glossary-of-Business-Terms", catalogHandler.ListGlossaryTerms)
	e.POST("/Glossary-of-Business-Terms", catalogHandler.CreateGlossaryTerm, gate, writers)
	e.PUT("/Glossary-of-Business-Terms/:name", catalogHandler.UpdateGlossaryTerm, gate, writers)
	e.DELETE("/Glossary-of-Business-Terms/:name", catalogHandler.DeleteGlossaryTerm, gate, writers)

	e.GET("/Source-Systems", catalogHandler.ListSourceSystems)
	e.POST("/Source-Systems", catalogHandler.CreateSourceSystem, gate, writers)
	e.PUT("/Source-Systems/:id", catalogHandler.UpdateSourceSystem, gate, writers)
	e.DELETE("/Source-Systems/:id", catalogHandler.DeleteSourceSystem, gate, writers)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthhandlers.Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		e.GET("/health/ready", healthhandlers.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)
	}

	return e
}
