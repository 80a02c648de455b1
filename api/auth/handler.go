package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/shared/response"
	"gorm.io/gorm"
)

type Handler struct {
	service  *Service
	userRepo *user.Repository
}

func NewHandler(service *Service, userRepo *user.Repository) *Handler {
	return &Handler{service: service, userRepo: userRepo}
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	u, token, err := h.service.Register(req)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	}

	return response.SuccessResponse(c, map[string]interface{}{
		"user":      u,
		"sessionId": token,
	})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	u, token, err := h.service.Login(req)
	if err != nil {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", err.Error())
	}

	return response.SuccessResponse(c, map[string]interface{}{
		"user":      u,
		"sessionId": token,
	})
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token != "" {
		h.service.Logout(token)
	}
	return response.SuccessResponse(c, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (h *Handler) Me(c echo.Context) error {
	userID := c.Get("userId").(uint)

	u, err := h.userRepo.GetWithFriendCount(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "User not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, u)
}
