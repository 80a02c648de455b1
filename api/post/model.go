package post

import (
	"time"

	"github.com/sociable/sociableapi/api/user"
)

const (
	PostsTableName    = "posts"
	LikesTableName    = "likes"
	CommentsTableName = "comments"
)

// PostModel represents a feed post with denormalized interaction counts
type PostModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	Content       string    `gorm:"not null" json:"content"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	VideoURL      string    `json:"videoUrl,omitempty"`
	MediaType     string    `json:"mediaType,omitempty"`
	LikesCount    int       `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int       `gorm:"not null;default:0" json:"commentsCount"`
	SharesCount   int       `gorm:"not null;default:0" json:"sharesCount"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PostModel) TableName() string {
	return PostsTableName
}

// LikeModel is a user's like on a post
type LikeModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_likes_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;index:idx_likes_user_post" json:"postId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (LikeModel) TableName() string {
	return LikesTableName
}

// CommentModel is a comment on a post
type CommentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null" json:"userId"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (CommentModel) TableName() string {
	return CommentsTableName
}

// PostWithUser is a post joined with its author summary
type PostWithUser struct {
	PostModel
	User    user.Summary `json:"user"`
	IsLiked bool         `json:"isLiked"`
}

// CommentWithUser is a comment joined with its author summary
type CommentWithUser struct {
	CommentModel
	User user.Summary `json:"user"`
}

// CreatePostRequest is the body for POST /api/posts
type CreatePostRequest struct {
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	VideoURL  string `json:"videoUrl"`
	MediaType string `json:"mediaType"`
}

// CreateCommentRequest is the body for POST /api/posts/:postId/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}
