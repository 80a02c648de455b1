package user

import (
	"net/http"
	"strconv"

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

// GetUser returns a user profile with its friend count
func (h *Handler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid user id")
	}

	u, err := h.repo.GetWithFriendCount(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "User not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, u)
}

// UpdateProfile updates the allow-listed profile fields of the current user
func (h *Handler) UpdateProfile(c echo.Context) error {
	userID := c.Get("userId").(uint)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Work != nil {
		updates["work"] = *req.Work
	}
	if req.ProfilePhoto != nil {
		updates["profile_photo"] = *req.ProfilePhoto
	}
	if req.CoverPhoto != nil {
		updates["cover_photo"] = *req.CoverPhoto
	}

	u, err := h.repo.UpdateProfile(userID, updates)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "User not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, u)
}
