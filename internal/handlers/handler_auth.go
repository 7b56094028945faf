package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
	"github.com/splitnest/expense_tracker_app/internal/platform/config"
	"github.com/splitnest/expense_tracker_app/internal/utils"
)

// AuthHandler handles signup, login and account removal.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	// 5 requests per minute per IP on the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", limitMiddleware, h.Signup)
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// registerAccountRoutes sets up the guarded account routes.
func registerAccountRoutes(rg *gin.RouterGroup, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)
	rg.DELETE("/auth/delete/:id", h.DeleteAccount)
}

// Signup registers a new account and returns a short-lived token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid signup data"))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, h.cfg.JWTSecret, h.cfg.JWTSignupExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("User Created", dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}))
}

// Login checks credentials and returns a day-scale token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid login data"))
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password produce the same response
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, h.cfg.JWTSecret, h.cfg.JWTLoginExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("Login Successful", dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}))
}

// DeleteAccount removes the authenticated account. Deleting an account
// that is already gone returns 404.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User Deleted", nil))
}
