package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/dogmap/dogmap-api/internal/api/handler"
	"github.com/dogmap/dogmap-api/internal/api/middleware"
	"github.com/dogmap/dogmap-api/internal/core/ports"
	"github.com/dogmap/dogmap-api/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store ports.Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dogmap"))

	// --- Dependencies ---
	authService := service.NewAuthService(store, log)
	userService := service.NewUserService(store, log)
	placeService := service.NewPlaceService(store, log)
	reviewService := service.NewReviewService(store, log)
	favoriteService := service.NewFavoriteService(store, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	placeHandler := handler.NewPlaceHandler(placeService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	healthHandler := handler.NewHealthHandler()

	authMiddleware := middleware.Auth(authService)
	ownFavorites := middleware.OwnFavorites()

	// --- Root, docs, probes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message":       "Bem-vindo à DogMap API!",
			"version":       "1.0.0",
			"documentation": "/api-docs/index.html",
		})
	})
	e.GET("/api-docs/*", echoswagger.WrapHandler)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.POST("/users", userHandler.Create)

	api.GET("/places", placeHandler.List)
	api.GET("/places/:id", placeHandler.Get)
	api.POST("/places", placeHandler.Create, authMiddleware)

	api.GET("/places/:id/reviews", reviewHandler.ListForPlace)
	api.POST("/places/:id/reviews", reviewHandler.Create, authMiddleware)

	favorites := api.Group("/users/:id/favorites", authMiddleware, ownFavorites)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("/:placeId", favoriteHandler.Add)
	favorites.DELETE("/:placeId", favoriteHandler.Remove)

	return e
}
