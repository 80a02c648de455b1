package group

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

// ListGroups returns the public group directory
func (h *Handler) ListGroups(c echo.Context) error {
	groups, err := h.repo.ListPublic()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, groups)
}

// CreateGroup creates a group owned by the caller
func (h *Handler) CreateGroup(c echo.Context) error {
	userID := c.Get("userId").(uint)

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Group name is required")
	}

	g := &GroupModel{
		Name:        req.Name,
		Description: req.Description,
		CoverPhoto:  req.CoverPhoto,
		CreatedBy:   userID,
		IsPrivate:   req.IsPrivate,
	}
	if err := h.repo.Create(g); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	}

	return response.CreatedResponse(c, g)
}

// JoinGroup adds the caller to a group
func (h *Handler) JoinGroup(c echo.Context) error {
	userID := c.Get("userId").(uint)

	groupID, err := strconv.Atoi(c.Param("groupId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid group id")
	}

	if _, err := h.repo.GetByID(uint(groupID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Group not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	isMember, err := h.repo.IsMember(userID, uint(groupID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	if isMember {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Already a member of this group")
	}

	member, err := h.repo.Join(userID, uint(groupID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.CreatedResponse(c, member)
}

// LeaveGroup removes the caller from a group
func (h *Handler) LeaveGroup(c echo.Context) error {
	userID := c.Get("userId").(uint)

	groupID, err := strconv.Atoi(c.Param("groupId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid group id")
	}

	if err := h.repo.Leave(userID, uint(groupID)); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, map[string]string{"message": "Left group"})
}
