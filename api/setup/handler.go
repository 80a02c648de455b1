package setup

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetStatus handles GET /api/setup/status; available before configuration
func (h *Handler) GetStatus(c echo.Context) error {
	return response.SuccessResponse(c, h.service.Status())
}

// TestConnection handles POST /api/setup/test-db
func (h *Handler) TestConnection(c echo.Context) error {
	var req TestConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	if err := h.service.TestConnection(req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "SetupException", err.Error())
	}

	return response.SuccessResponse(c, map[string]bool{"connected": true})
}

// CompleteSetup handles POST /api/setup
func (h *Handler) CompleteSetup(c echo.Context) error {
	var req CompleteSetupRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	if err := h.service.CompleteSetup(req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "SetupException", err.Error())
	}

	return response.SuccessResponse(c, h.service.Status())
}
