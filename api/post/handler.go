package post

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

// ListPosts returns the feed with the caller's like status on each post
func (h *Handler) ListPosts(c echo.Context) error {
	userID := c.Get("userId").(uint)

	posts, err := h.repo.List()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	for i := range posts {
		liked, err := h.repo.IsLiked(userID, posts[i].ID)
		if err != nil {
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
		posts[i].IsLiked = liked
	}

	return response.SuccessResponse(c, posts)
}

// ListUserPosts returns the posts of a single user
func (h *Handler) ListUserPosts(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid user id")
	}

	posts, err := h.repo.ListByUser(uint(id))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, posts)
}

// CreatePost inserts a post authored by the current user
func (h *Handler) CreatePost(c echo.Context) error {
	userID := c.Get("userId").(uint)

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Post content is required")
	}

	p := &PostModel{
		UserID:    userID,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		VideoURL:  req.VideoURL,
		MediaType: req.MediaType,
	}
	if err := h.repo.Create(p); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", err.Error())
	}

	return response.CreatedResponse(c, p)
}

// ToggleLike likes the post, or removes the caller's existing like
func (h *Handler) ToggleLike(c echo.Context) error {
	userID := c.Get("userId").(uint)

	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid post id")
	}

	if _, err := h.repo.GetByID(uint(postID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Post not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	liked, err := h.repo.IsLiked(userID, uint(postID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	if liked {
		if err := h.repo.DeleteLike(userID, uint(postID)); err != nil {
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
		return response.SuccessResponse(c, map[string]bool{"liked": false})
	}

	if err := h.repo.CreateLike(userID, uint(postID)); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}
	return response.SuccessResponse(c, map[string]bool{"liked": true})
}

// ListComments returns a post's comments
func (h *Handler) ListComments(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid post id")
	}

	comments, err := h.repo.ListComments(uint(postID))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, comments)
}

// CreateComment inserts a comment on a post
func (h *Handler) CreateComment(c echo.Context) error {
	userID := c.Get("userId").(uint)

	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid post id")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Comment content is required")
	}

	if _, err := h.repo.GetByID(uint(postID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Post not found")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	comment := &CommentModel{UserID: userID, PostID: uint(postID), Content: req.Content}
	if err := h.repo.CreateComment(comment); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.CreatedResponse(c, comment)
}
