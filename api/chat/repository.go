package chat

import (
	"github.com/sociable/sociableapi/database"
)

type Repository struct {
	db *database.Provider
}

func NewRepository(db *database.Provider) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(m *ChatMessageModel) error {
	return r.db.Get().Create(m).Error
}

// Conversation returns both directions of a two-user thread in chronological order
func (r *Repository) Conversation(userID, otherID uint) ([]ChatMessageModel, error) {
	messages := []ChatMessageModel{}
	err := r.db.Get().
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
