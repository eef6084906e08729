package app

import (
	"github.com/JorgegrDev/medic-action/internal/auth"
	"github.com/JorgegrDev/medic-action/internal/cache"
	"github.com/JorgegrDev/medic-action/internal/config"
	"github.com/JorgegrDev/medic-action/internal/handlers"
	"github.com/JorgegrDev/medic-action/internal/notify"
	"github.com/JorgegrDev/medic-action/internal/repo"
	"github.com/JorgegrDev/medic-action/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, dispatcher notify.Dispatcher) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	var verifier service.GoogleTokenVerifier
	if auds := cfg.Auth.GoogleAudiences(); len(auds) > 0 {
		verifier = auth.NewGoogleVerifier(auds)
	}
	userSvc := service.NewUserService(userRepo, verifier)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc, int(cfg.Auth.SessionTTL.Duration().Seconds()))
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(sessionStore))

	medRepo := repo.NewPGMedicationRepo(db)
	activityRepo := repo.NewPGActivityRepo(db)
	medCache := cache.NewMedicationCache(rdb, cfg.Redis.DefaultTTL.Duration())
	medSvc := service.NewMedicationService(medRepo, activityRepo, dispatcher, medCache)
	medHandler := handlers.NewMedicationHandler(medSvc)
	registerMedicationRoutes(protected, medHandler)

	activityHandler := handlers.NewActivityHandler(service.NewActivityService(activityRepo))
	protected.GET("/activities", activityHandler.List)

	deviceHandler := handlers.NewDeviceHandler(service.NewDeviceService(repo.NewPGDeviceRepo(db)))
	protected.POST("/devices", deviceHandler.Register)
	protected.DELETE("/devices", deviceHandler.Remove)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Medic Action API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerMedicationRoutes(api *gin.RouterGroup, h *handlers.MedicationHandler) {
	api.POST("/medications", h.Create)
	api.GET("/medications", h.List)
	api.GET("/medications/:id", h.GetByID)
	api.PUT("/medications/:id", h.Update)
	api.DELETE("/medications/:id", h.Delete)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/google", h.Google)
	api.POST("/auth/logout", h.Logout)
}
