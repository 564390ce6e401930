package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
	"github.com/wevomedia/wevo_media_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Everything else requires a session
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.SessionCookieName))

	registerLeadRoutes(v1, services.Lead)
	registerClientRoutes(v1, services.Client)
	registerSupportRoutes(v1, services.Support)
	registerUserRoutes(v1, services.User)
	registerProjectRoutes(v1, services.Project)
	registerTaskRoutes(v1, services.Task)
	registerContractRoutes(v1, services.Contract)
	registerFinanceRoutes(v1, services.Entry, services.Payable, services.Receivable)
	registerReportingRoutes(v1, services.Reporting)
}
