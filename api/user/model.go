package user

import (
	"time"
)

const UsersTableName = "users"

// UserModel represents a registered account.
//
// The password column carries a bcrypt hash and is never serialized.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	Bio          string    `json:"bio,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CoverPhoto   string    `json:"coverPhoto,omitempty"`
	Location     string    `json:"location,omitempty"`
	Work         string    `json:"work,omitempty"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for the User model
func (UserModel) TableName() string {
	return UsersTableName
}

// Summary is the author projection joined onto posts, comments and directories
type Summary struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// WithFriendCount is a user enriched with the accepted-friendship count
type WithFriendCount struct {
	UserModel
	FriendsCount int64 `json:"friendsCount"`
}

// UpdateProfileRequest carries the allow-listed profile fields
type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	Work         *string `json:"work"`
	ProfilePhoto *string `json:"profilePhoto"`
	CoverPhoto   *string `json:"coverPhoto"`
}
