package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rafabene/sheetsync-backend/internal/handlers/middleware"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/i18n"
)

// RouterConfig contém as configurações necessárias para montar o router
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
}

// NewRouter monta o router com middlewares e todas as rotas da API.
// Rotas de usuários e sync exigem sessão; login/callback/me/health/root não.
func NewRouter(
	cfg RouterConfig,
	i18nService *i18n.Service,
	sessions middleware.SessionResolver,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	syncHandler *SyncHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(middleware.RequestID())

	// Base URL no contexto para construir URIs RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "User Management Service API",
			"version": "1.0.0",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	auth := router.Group("/auth")
	{
		auth.GET("/login", authHandler.Login)
		auth.GET("/callback", authHandler.Callback)
		auth.GET("/me", authHandler.Me)
	}

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	users := router.Group("/users", authMiddleware.RequireSession())
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	sync := router.Group("/sync", authMiddleware.RequireSession())
	{
		sync.POST("/create-sheet", syncHandler.CreateSheet)
		sync.POST("/:sheet_id/to-cloud", syncHandler.ToCloud)
		sync.POST("/:sheet_id/from-cloud", syncHandler.FromCloud)
	}

	return router
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"}

	if allowedOrigins == "" || allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true

	return cfg
}
