package api

import (
	"net/http"

	mirrorDelivery "mailpilot-backend/internal/mirror/delivery"
	statsDelivery "mailpilot-backend/internal/stats/delivery"
	tenantDelivery "mailpilot-backend/internal/tenant/delivery"
	tenantUsecase "mailpilot-backend/internal/tenant/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, oauthUsecase tenantUsecase.OAuthUsecase, authHandler *tenantDelivery.AuthHandler, mirrorHandler *mirrorDelivery.MirrorHandler, statsHandler *statsDelivery.StatsHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// OAuth onboarding routes
		auth := api.Group("/auth")
		{
			auth.GET("/google/url", authHandler.GetAuthURL)
			auth.GET("/google/callback", authHandler.HandleCallback)
			auth.DELETE("/account", tenantDelivery.AuthMiddleware(oauthUsecase), authHandler.RemoveAccount)
		}

		// Label mirror routes (protected)
		labels := api.Group("/labels")
		labels.Use(tenantDelivery.AuthMiddleware(oauthUsecase))
		{
			labels.GET("", mirrorHandler.ListLabels)
			labels.POST("", mirrorHandler.CreateLabel)
			labels.DELETE("/:id", mirrorHandler.DeleteLabel)
		}

		// Rule mirror routes (protected)
		rules := api.Group("/rules")
		rules.Use(tenantDelivery.AuthMiddleware(oauthUsecase))
		{
			rules.GET("", mirrorHandler.ListRules)
			rules.POST("", mirrorHandler.CreateRule)
			rules.DELETE("/:id", mirrorHandler.DeleteRule)
		}

		// Statistics routes (protected)
		stats := api.Group("/stats")
		stats.Use(tenantDelivery.AuthMiddleware(oauthUsecase))
		{
			stats.GET("/rules/:remoteId", statsHandler.GetRuleStats)
			stats.GET("/messages", statsHandler.GetMessageCounts)
		}
	}
}
