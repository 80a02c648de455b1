package group

import (
	"time"

	"github.com/sociable/sociableapi/api/user"
)

const (
	GroupsTableName       = "groups"
	GroupMembersTableName = "group_members"
)

// GroupModel is a community group with a denormalized member count
type GroupModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description,omitempty"`
	CoverPhoto   string    `json:"coverPhoto,omitempty"`
	CreatedBy    uint      `gorm:"not null" json:"createdBy"`
	MembersCount int       `gorm:"not null;default:0" json:"membersCount"`
	IsPrivate    bool      `gorm:"not null;default:false" json:"isPrivate"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (GroupModel) TableName() string {
	return GroupsTableName
}

// GroupMemberModel is a user's membership in a group
type GroupMemberModel struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID  uint      `gorm:"not null;index" json:"groupId"`
	UserID   uint      `gorm:"not null;index" json:"userId"`
	Role     string    `gorm:"not null;default:member" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

func (GroupMemberModel) TableName() string {
	return GroupMembersTableName
}

// GroupWithCreator is a group joined with its creator summary
type GroupWithCreator struct {
	GroupModel
	Creator user.Summary `json:"creator"`
}

// CreateGroupRequest is the body for POST /api/groups
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CoverPhoto  string `json:"coverPhoto"`
	IsPrivate   bool   `json:"isPrivate"`
}
