package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Maleklabbaci/DARI-WEBSITE-sub000/docs"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/handler"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/middleware"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Auth          ports.AuthService
	Wallet        ports.WalletService
	Listings      ports.ListingService
	Boosts        ports.BoostService
	Messaging     ports.MessagingService
	Sessions      ports.SessionStore
	Notifications ports.NotificationStore

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret     string
	DefaultLocale string
	Logger        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("dari"))
	e.Use(middleware.Locale(deps.DefaultLocale))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	authHandler := handler.NewAuthHandler(deps.Auth)
	accountHandler := handler.NewAccountHandler(deps.Wallet, deps.Sessions, deps.Notifications)
	listingHandler := handler.NewListingHandler(deps.Listings, deps.Wallet)
	boostHandler := handler.NewBoostHandler(deps.Boosts)
	inboxHandler := handler.NewInboxHandler(deps.Messaging)

	v1 := e.Group("/v1")

	// Public routes.
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/listings", listingHandler.Search)
	v1.GET("/listings/:id", listingHandler.Get)

	// Authenticated routes.
	auth := v1.Group("", middleware.Auth(deps.JWTSecret))
	auth.POST("/auth/logout", authHandler.Logout)

	auth.GET("/me", accountHandler.Me)
	auth.PATCH("/me", accountHandler.Patch)
	auth.PUT("/me/locale", accountHandler.PutLocale)
	auth.GET("/me/wallet", accountHandler.Wallet)
	auth.POST("/me/wallet/recharge", accountHandler.Recharge)
	auth.PUT("/me/subscription", accountHandler.Subscribe)
	auth.GET("/me/favorites", accountHandler.Favorites)
	auth.POST("/me/favorites/:listing_id", accountHandler.ToggleFavorite)
	auth.GET("/me/alerts", accountHandler.Alerts)
	auth.POST("/me/alerts", accountHandler.AddAlert)
	auth.PATCH("/me/alerts/:alert_id", accountHandler.ToggleAlert)
	auth.DELETE("/me/alerts/:alert_id", accountHandler.RemoveAlert)
	auth.GET("/me/notifications", accountHandler.Notifications)

	auth.POST("/listings", listingHandler.Publish)
	auth.POST("/listings/describe", listingHandler.Describe)
	auth.POST("/listings/:id/phone", listingHandler.RevealPhone)
	auth.POST("/listings/:id/boost", boostHandler.Boost)
	auth.POST("/listings/:id/contact", inboxHandler.Contact)

	auth.GET("/boosts", boostHandler.Analytics)

	auth.GET("/inbox", inboxHandler.Inbox)
	auth.GET("/inbox/:thread_id", inboxHandler.Thread)
	auth.POST("/inbox/:thread_id/messages", inboxHandler.Reply)

	return e
}
