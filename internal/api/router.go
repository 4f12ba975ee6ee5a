package api

import (
	"time"

	"event_manager/internal/metrics"
	"event_manager/internal/middleware"
	"event_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps is everything the router needs
type Deps struct {
	Accounts      *service.Accounts
	Events        *service.Events
	Registrations *service.Registrations
	DB            *gorm.DB
	Redis         *redis.Client
	SessionTTL    time.Duration
	SecureCookies bool    // Set the Secure flag on the session cookie
	LoginRate     float64 // Login attempts per second per client IP, 0 disables
	LoginBurst    int
}

// NewRouter wires every route onto a new gin engine
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware())

	r.GET("/healthz", HealthHandler(d.DB, d.Redis))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public routes run without a session lookup
	r.POST("/register", RegisterHandler(d.Accounts))
	r.GET("/events/:id", GetEventHandler(d.Events))
	r.POST("/events/:id/registrations", SubmitRegistrationHandler(d.Registrations))

	// Everything below knows who is calling, if anyone
	app := r.Group("/", middleware.LoadSession(d.Accounts))
	app.POST("/login", middleware.RateLimit(d.LoginRate, d.LoginBurst), LoginHandler(d.Accounts, d.SessionTTL, d.SecureCookies))
	app.POST("/logout", LogoutHandler(d.Accounts, d.SecureCookies))
	app.GET("/home", HomeHandler(d.Events))

	// Admin routes
	admin := app.Group("/", middleware.AdminOnly(Deny))
	admin.POST("/events", CreateEventHandler(d.Events))
	admin.PUT("/events/:id", UpdateEventHandler(d.Events))
	admin.DELETE("/events/:id", DeleteEventHandler(d.Events))
	admin.GET("/events/:id/registrations", ListRegistrationsHandler(d.Registrations))

	return r
}
