package game

import (
	"net/http"
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

// ListGames returns the game directory
func (h *Handler) ListGames(c echo.Context) error {
	games, err := h.repo.List()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, games)
}

// CreateGame adds a game to the directory
func (h *Handler) CreateGame(c echo.Context) error {
	var req CreateGameRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Game name and category are required")
	}

	g := &GameModel{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		ThumbnailURL: req.ThumbnailURL,
		PlayURL:      req.PlayURL,
	}
	if err := h.repo.Create(g); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	}

	return response.CreatedResponse(c, g)
}
