package admin

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/api/post"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/shared/response"
)

const snapshotHistoryLimit = 30

type Handler struct {
	service  *Service
	userRepo *user.Repository
	postRepo *post.Repository
}

func NewHandler(service *Service, userRepo *user.Repository, postRepo *post.Repository) *Handler {
	return &Handler{service: service, userRepo: userRepo, postRepo: postRepo}
}

// ListUsers returns every account for the admin dashboard
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userRepo.All()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, users)
}

// ListPosts returns every post for the admin dashboard
func (h *Handler) ListPosts(c echo.Context) error {
	posts, err := h.postRepo.List()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, posts)
}

// DeleteUser removes an account; admins cannot delete themselves
func (h *Handler) DeleteUser(c echo.Context) error {
	userID := c.Get("userId").(uint)

	targetID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid user id")
	}

	if uint(targetID) == userID {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Cannot delete your own account")
	}

	deleted, err := h.userRepo.Delete(uint(targetID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	if !deleted {
		return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "User not found")
	}

	return response.SuccessResponse(c, map[string]string{"message": "User deleted successfully"})
}

// DeletePost removes a post
func (h *Handler) DeletePost(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid post id")
	}

	deleted, err := h.postRepo.Delete(uint(postID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	if !deleted {
		return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Post not found")
	}

	return response.SuccessResponse(c, map[string]string{"message": "Post deleted successfully"})
}

// GetStats returns the live dashboard counters
func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.service.Stats()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, stats)
}

// GetStatsHistory returns the persisted daily snapshots
func (h *Handler) GetStatsHistory(c echo.Context) error {
	snapshots, err := h.service.SnapshotHistory(snapshotHistoryLimit)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, snapshots)
}
