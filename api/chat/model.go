package chat

import (
	"time"
)

const ChatMessagesTableName = "chat_messages"

// ChatMessageModel is a direct message between two users. The client polls
// the conversation endpoint; there is no push transport.
type ChatMessageModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"senderId"`
	ReceiverID uint      `gorm:"not null;index" json:"receiverId"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ChatMessageModel) TableName() string {
	return ChatMessagesTableName
}

// SendMessageRequest is the body for POST /api/chat/:userId
type SendMessageRequest struct {
	Content string `json:"content"`
}
