package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shutterdesk/handlers"
	"shutterdesk/middleware"
	"shutterdesk/utils"
)

// RegisterAuthRoutes registers operator authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginOperator)
		api.POST("/logout", hb.LogoutOperator)
	}
}

// RegisterSessionRoutes sets up the endpoints for the booking workflow.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthOperatorMiddleware())
		api.GET("", hb.ListSessions)
		api.GET("/snapshots/:snapshotID", hb.GetSnapshot)
		api.POST("", hb.CreateSession)
		api.GET("/:id", hb.GetSession)
		api.PUT("/:id", hb.UpdateSession)
		api.DELETE("/:id", hb.DeleteSession)
		api.GET("/:id/summary", hb.GetSummary)
		api.POST("/:id/transition", hb.TransitionSession)
		api.POST("/:id/shoot", hb.GenerateShoot)
		api.POST("/:id/invoice", hb.CreateInvoice)
		api.POST("/:id/email", hb.EmailClient)
		api.GET("/:id/documents/:kind", hb.GetDocument)
	}
}

// RegisterCatalogRoutes registers package and add-on endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthOperatorMiddleware())
		api.GET("/packages", hb.ListPackages)
		api.GET("/addons", hb.ListAddOns)
		api.PUT("/packages/:id", hb.UpsertPackage)
		api.PUT("/addons/:id", hb.UpsertAddOn)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
