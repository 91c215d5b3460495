package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig selects the optional parts of the HTTP surface
type RouterConfig struct {
	RoutingVariant     string
	HashPreviewEnabled bool
}

// NewRouter wires middleware and all routes onto a new gin engine
func NewRouter(cfg RouterConfig, log *zap.Logger, auth *AuthHandler, expenses *ExpenseHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(ginzap.Ginzap(log, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(cors.Default())

	root := router.Group("/")
	auth.RegisterAuthRoutes(root, cfg.HashPreviewEnabled)
	expenses.RegisterExpenseRoutes(root, cfg.RoutingVariant)

	router.GET("/health", health.Health)

	return router
}
