package handler

import (
	"errors"
	"net/http"

	"expense_api/internal/model"
	"expense_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const missingCredentialsMsg = "Missing username or password"

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	log     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

// HashPreview returns the bcrypt hash of the raw path segment.
// Not meant for production deployments.
func (h *AuthHandler) HashPreview(c *gin.Context) {
	hashed, err := h.service.HashPreview(c.Param("raw"))
	if err != nil {
		h.log.Error("hash preview failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Hashing error")
		return
	}
	c.String(http.StatusOK, hashed)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.Credentials
	if !bindRequest(c, &req, missingCredentialsMsg) {
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.String(http.StatusConflict, "Username already exists")
		case errors.Is(err, service.ErrHashFailure):
			h.log.Error("registration failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Hashing error")
		default:
			h.log.Error("registration failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "DB error")
		}
		return
	}
	c.String(http.StatusOK, "Insert done")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.Credentials
	if !bindRequest(c, &req, missingCredentialsMsg) {
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongUsername):
			c.String(http.StatusUnauthorized, "Wrong username")
		case errors.Is(err, service.ErrWrongPassword):
			c.String(http.StatusUnauthorized, "Wrong password")
		case errors.Is(err, service.ErrPasswordCheck):
			h.log.Error("login failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Password checking error")
		default:
			h.log.Error("login failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Database server error")
		}
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Message:  "Login OK",
		UserID:   user.ID,
		Username: req.Username,
	})
}

// RegisterAuthRoutes registers auth routes. The hash preview route is only
// added when hashPreview is set.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, hashPreview bool) {
	if hashPreview {
		rg.GET("/password/:raw", h.HashPreview)
	}
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}
