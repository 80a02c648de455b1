package page

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/shared/response"
	"gorm.io/gorm"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListPages returns the page directory
func (h *Handler) ListPages(c echo.Context) error {
	pages, err := h.repo.List()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, pages)
}

// CreatePage creates a page owned by the caller
func (h *Handler) CreatePage(c echo.Context) error {
	userID := c.Get("userId").(uint)

	var req CreatePageRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Page name and category are required")
	}

	p := &PageModel{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		CoverPhoto:   req.CoverPhoto,
		ProfilePhoto: req.ProfilePhoto,
		CreatedBy:    userID,
	}
	if err := h.repo.Create(p); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	}

	return response.CreatedResponse(c, p)
}

// FollowPage records the caller following a page
func (h *Handler) FollowPage(c echo.Context) error {
	userID := c.Get("userId").(uint)

	pageID, err := strconv.Atoi(c.Param("pageId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid page id")
	}

	if _, err := h.repo.GetByID(uint(pageID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Page not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	following, err := h.repo.IsFollowing(userID, uint(pageID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	if following {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Already following this page")
	}

	follower, err := h.repo.Follow(userID, uint(pageID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.CreatedResponse(c, follower)
}

// UnfollowPage removes the caller's follow
func (h *Handler) UnfollowPage(c echo.Context) error {
	userID := c.Get("userId").(uint)

	pageID, err := strconv.Atoi(c.Param("pageId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid page id")
	}

	if err := h.repo.Unfollow(userID, uint(pageID)); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, map[string]string{"message": "Unfollowed page"})
}
