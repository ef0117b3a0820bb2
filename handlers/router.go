package handlers

import (
	"time"

	"astrokalki/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(cors.New(corsConfig(corsOrigins)))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/test-ai", h.TestAI)

		api.POST("/analysis/karma-dna", h.AnalyzeKarmaDNA)
		api.POST("/analysis/karmic-debts", h.ScanKarmicDebts)
		api.POST("/analysis/compatibility", h.AnalyzeCompatibility)
		api.POST("/analysis/impact-windows", h.AnalyzeImpactWindows)

		api.POST("/karma/dna", h.KarmaDNA)
		api.POST("/karma/debts", h.KarmicDebts)

		api.GET("/user/plan", h.GetUserPlan)
		api.POST("/payment/proof", h.SubmitPaymentProof)
		api.GET("/plans", h.ListPlans)
		api.GET("/sessions", h.ListSessions)
		api.GET("/radio", h.Radio)

		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments/:id", h.GetAppointment)
		api.PATCH("/appointments/:id", h.UpdateAppointment)
		api.DELETE("/appointments/:id", h.DeleteAppointment)

		admin := api.Group("/admin")
		admin.POST("/login", h.AdminLogin)
		admin.GET("/appointments", middleware.AdminRequired([]byte(h.admin.JWTSecret)), h.ListAppointments)
	}

	h.logger.Debug("routes registered", zap.Int("count", len(r.Routes())))
	return r
}

// corsConfig allows every origin when the list is empty or contains "*".
// Credentials are only allowed for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", confirmationHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
