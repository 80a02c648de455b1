package chat

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/shared/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetConversation returns the thread between the caller and another user
func (h *Handler) GetConversation(c echo.Context) error {
	userID := c.Get("userId").(uint)

	otherID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid user id")
	}

	messages, err := h.repo.Conversation(userID, uint(otherID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, messages)
}

// SendMessage appends a message to the thread
func (h *Handler) SendMessage(c echo.Context) error {
	userID := c.Get("userId").(uint)

	otherID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid user id")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Message content is required")
	}

	m := &ChatMessageModel{SenderID: userID, ReceiverID: uint(otherID), Content: req.Content}
	if err := h.repo.Create(m); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.CreatedResponse(c, m)
}
