package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
	"github.com/splitnest/expense_tracker_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Everything else requires a valid bearer token
	guarded := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(guarded, cfg, services.User)
	registerExpenseRoutes(guarded, services.Expense, services.Session, services.User)
	registerGroupRoutes(guarded, services.Group)
	registerGroupExpenseRoutes(guarded, services.GroupExpense, services.Group)
}
