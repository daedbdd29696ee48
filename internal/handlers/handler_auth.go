package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/kasku/kasku_backend/internal/middleware"
	"github.com/kasku/kasku_backend/internal/platform/config"
	"github.com/kasku/kasku_backend/internal/utils"
)

// authHandler handles the public registration and login endpoints.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// registerAuthRoutes registers the unauthenticated routes. Login is rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, svc services.ServiceProvider) {
	h := &authHandler{userService: svc.UserSvc, cfg: cfg}

	r.POST("/users", h.register)
	r.POST("/login", middleware.LoginRateLimiter(cfg.LoginRateLimit), h.login)
}

// register godoc
// @Summary Register a new user
// @Description Creates a user account plus a default wallet, atomically
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.Response{data=dto.RegisterUserResponse}
// @Failure 400 {object} dto.Response "Validation error or username taken"
// @Router /users [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("user registered", slog.String("user_id", user.UserID))
	respondSuccess(c, http.StatusCreated, "User registered successfully", dto.RegisterUserResponse{UserID: user.UserID})
}

// login godoc
// @Summary Log in
// @Description Verifies credentials and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 401 {object} dto.Response "Incorrect username or password"
// @Failure 429 {object} dto.Response "Too many attempts"
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateAccessToken(user.UserID, h.cfg.JWTSecret, h.cfg.JWTIssuer, h.cfg.JWTExpiryDuration)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("user logged in", slog.String("user_id", user.UserID))
	respondSuccess(c, http.StatusOK, "Login successful", dto.LoginResponse{AccessToken: token})
}
