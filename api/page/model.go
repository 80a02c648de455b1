package page

import (
	"time"

	"github.com/sociable/sociableapi/api/user"
)

const (
	PagesTableName         = "pages"
	PageFollowersTableName = "page_followers"
)

// PageModel is a public page with a denormalized follower count
type PageModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description,omitempty"`
	Category       string    `gorm:"not null" json:"category"`
	CoverPhoto     string    `json:"coverPhoto,omitempty"`
	ProfilePhoto   string    `json:"profilePhoto,omitempty"`
	CreatedBy      uint      `gorm:"not null" json:"createdBy"`
	FollowersCount int       `gorm:"not null;default:0" json:"followersCount"`
	IsVerified     bool      `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PageModel) TableName() string {
	return PagesTableName
}

// PageFollowerModel is a user following a page
type PageFollowerModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PageID     uint      `gorm:"not null;index" json:"pageId"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	FollowedAt time.Time `gorm:"autoCreateTime" json:"followedAt"`
}

func (PageFollowerModel) TableName() string {
	return PageFollowersTableName
}

// PageWithCreator is a page joined with its creator summary
type PageWithCreator struct {
	PageModel
	Creator user.Summary `json:"creator"`
}

// CreatePageRequest is the body for POST /api/pages
type CreatePageRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	CoverPhoto   string `json:"coverPhoto"`
	ProfilePhoto string `json:"profilePhoto"`
}
