package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cinemateca/catalog-api/docs"
	"github.com/cinemateca/catalog-api/internal/api/handler"
	"github.com/cinemateca/catalog-api/internal/api/middleware"
	"github.com/cinemateca/catalog-api/internal/core/domain"
	"github.com/cinemateca/catalog-api/internal/core/service"
	"github.com/cinemateca/catalog-api/internal/core/token"
	mongodb "github.com/cinemateca/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cinemateca/catalog-api/internal/infrastructure/db/redis"
	"github.com/cinemateca/catalog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, corsOrigins []string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	cache := redisdb.NewListCache(rdb, 0)

	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)

	authService := service.NewAuthService(userRepo, issuer, log)
	categoryService := service.NewCategoryService(categoryRepo, cache, log)
	movieService := service.NewMovieService(movieRepo, categoryRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	movieHandler := handler.NewMovieHandler(movieService)

	authRequired := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Users / auth ---
	usuarios := api.Group("/usuarios")
	usuarios.POST("/registro", authHandler.Register)
	usuarios.POST("/login", authHandler.Login)
	usuarios.GET("", authHandler.ListUsers, authRequired, adminOnly)
	usuarios.GET("/:id", authHandler.GetUser, authRequired, adminOnly)

	// --- Categories: reads for any authenticated role, writes admin only ---
	categorias := api.Group("/categorias", authRequired)
	categorias.GET("", categoryHandler.List)
	categorias.GET("/:id", categoryHandler.Get)
	categorias.POST("", categoryHandler.Create, adminOnly)
	categorias.PATCH("/:id", categoryHandler.Update, adminOnly)
	categorias.PUT("/:id", categoryHandler.Update, adminOnly)
	categorias.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Movies: public reads, admin writes ---
	peliculas := api.Group("/peliculas")
	peliculas.GET("", movieHandler.List)
	peliculas.GET("/buscar", movieHandler.Search)
	peliculas.GET("/categoria/:categoriaId", movieHandler.ListByCategory)
	peliculas.GET("/:id", movieHandler.Get)
	peliculas.POST("", movieHandler.Create, authRequired, adminOnly)
	peliculas.PATCH("/:id", movieHandler.Update, authRequired, adminOnly)
	peliculas.DELETE("/:id", movieHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
