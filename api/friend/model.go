package friend

import (
	"time"
)

const FriendshipsTableName = "friendships"

// Friendship status values
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// FriendshipModel is a directed friendship edge: UserID sent the request,
// FriendID received it. Accepted edges count for both directions.
type FriendshipModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	FriendID  uint      `gorm:"not null;index" json:"friendId"`
	Status    string    `gorm:"not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (FriendshipModel) TableName() string {
	return FriendshipsTableName
}

// RequestFriendRequest is the body for POST /api/friends/request
type RequestFriendRequest struct {
	FriendID uint `json:"friendId"`
}

// RespondFriendRequest is the body for PUT /api/friends/respond
type RespondFriendRequest struct {
	FriendID uint   `json:"friendId"`
	Action   string `json:"action"`
}
