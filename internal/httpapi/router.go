package httpapi

import (
	"time"

	"floreria-be/internal/config"
	"floreria-be/internal/logger"
	"floreria-be/internal/middleware"
	"floreria-be/internal/role"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint with its role guard. Reads on the catalog
// are public; everything else requires a matching group.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(corsMiddleware(cfg))
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// uploaded product images
	r.Static(h.Media.URLPath(), h.Media.Root())

	r.POST("/auth/login", h.Login)
	r.GET("/me", middleware.RequireAuth(), h.Me)

	catalogWrite := middleware.RequireRole(role.Admin, role.Bodeguero)

	r.GET("/categories", h.ListCategories)
	r.POST("/categories", catalogWrite, h.CreateCategory)
	r.GET("/categories/:id", h.GetCategory)
	r.PATCH("/categories/:id", catalogWrite, h.UpdateCategory)
	r.PUT("/categories/:id", catalogWrite, h.UpdateCategory)
	r.DELETE("/categories/:id", catalogWrite, h.DeleteCategory)

	r.GET("/products", h.ListProducts)
	r.POST("/products", catalogWrite, h.CreateProduct)
	r.GET("/products/:id", h.GetProduct)
	r.PATCH("/products/:id", catalogWrite, h.UpdateProduct)
	r.PUT("/products/:id", catalogWrite, h.UpdateProduct)
	r.DELETE("/products/:id", catalogWrite, h.DeleteProduct)

	sales := middleware.RequireRole(role.Admin, role.Vendedor)

	r.POST("/orders", sales, h.CreateOrder)
	r.GET("/orders/list", sales, h.ListOrders)
	r.GET("/orders/:id", sales, h.GetOrder)

	return r
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}

	return cors.New(corsCfg)
}
