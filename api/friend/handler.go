package friend

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/shared/response"
)

const suggestionLimit = 5

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListFriends returns the caller's accepted friends
func (h *Handler) ListFriends(c echo.Context) error {
	userID := c.Get("userId").(uint)

	friends, err := h.repo.Friends(userID)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, friends)
}

// ListRequests returns pending requests addressed to the caller
func (h *Handler) ListRequests(c echo.Context) error {
	userID := c.Get("userId").(uint)

	requests, err := h.repo.Requests(userID)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, requests)
}

// ListSuggestions returns users the caller has no edge with yet
func (h *Handler) ListSuggestions(c echo.Context) error {
	userID := c.Get("userId").(uint)

	suggestions, err := h.repo.Suggestions(userID, suggestionLimit)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, suggestions)
}

// SendRequest creates a pending friendship edge from the caller
func (h *Handler) SendRequest(c echo.Context) error {
	userID := c.Get("userId").(uint)

	var req RequestFriendRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	if req.FriendID == userID {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Cannot send friend request to yourself")
	}

	existing, err := h.repo.Get(userID, req.FriendID)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	if existing != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Friendship already exists")
	}

	f := &FriendshipModel{UserID: userID, FriendID: req.FriendID, Status: StatusPending}
	if err := h.repo.Create(f); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	}

	return response.CreatedResponse(c, f)
}

// Respond accepts or declines a pending request addressed to the caller
func (h *Handler) Respond(c echo.Context) error {
	userID := c.Get("userId").(uint)

	var req RespondFriendRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	var status string
	switch req.Action {
	case "accept":
		status = StatusAccepted
	case "decline":
		status = StatusDeclined
	default:
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Action must be accept or decline")
	}

	updated, err := h.repo.UpdateStatus(req.FriendID, userID, status)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	if !updated {
		return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Friend request not found")
	}

	return response.SuccessResponse(c, map[string]string{"message": "Friend request " + status})
}
