package friend

import (
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
	"gorm.io/gorm"
)

type Repository struct {
	db *database.Provider
}

func NewRepository(db *database.Provider) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(f *FriendshipModel) error {
	return r.db.Get().Create(f).Error
}

// Get returns the friendship edge between two users in either direction
func (r *Repository) Get(userID, friendID uint) (*FriendshipModel, error) {
	var f FriendshipModel
	err := r.db.Get().
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		First(&f).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// UpdateStatus resolves the pending edge sent by requesterID to recipientID
func (r *Repository) UpdateStatus(requesterID, recipientID uint, status string) (bool, error) {
	result := r.db.Get().Model(&FriendshipModel{}).
		Where("user_id = ? AND friend_id = ? AND status = ?", requesterID, recipientID, StatusPending).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Friends returns the users connected to userID by an accepted edge
func (r *Repository) Friends(userID uint) ([]user.UserModel, error) {
	var edges []FriendshipModel
	err := r.db.Get().
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, StatusAccepted).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	friendIDs := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.UserID == userID {
			friendIDs = append(friendIDs, e.FriendID)
		} else {
			friendIDs = append(friendIDs, e.UserID)
		}
	}

	friends := []user.UserModel{}
	if len(friendIDs) == 0 {
		return friends, nil
	}
	if err := r.db.Get().Where("id IN ?", friendIDs).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// Requests returns the users with a pending request sent to userID
func (r *Repository) Requests(userID uint) ([]user.UserModel, error) {
	var edges []FriendshipModel
	err := r.db.Get().
		Where("friend_id = ? AND status = ?", userID, StatusPending).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	requesterIDs := make([]uint, 0, len(edges))
	for _, e := range edges {
		requesterIDs = append(requesterIDs, e.UserID)
	}

	requesters := []user.UserModel{}
	if len(requesterIDs) == 0 {
		return requesters, nil
	}
	if err := r.db.Get().Where("id IN ?", requesterIDs).Find(&requesters).Error; err != nil {
		return nil, err
	}
	return requesters, nil
}

// Suggestions returns users with no edge to userID in any state, capped at limit
func (r *Repository) Suggestions(userID uint, limit int) ([]user.UserModel, error) {
	var edges []FriendshipModel
	err := r.db.Get().
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	excludeIDs := []uint{userID}
	for _, e := range edges {
		if e.UserID == userID {
			excludeIDs = append(excludeIDs, e.FriendID)
		} else {
			excludeIDs = append(excludeIDs, e.UserID)
		}
	}

	var suggestions []user.UserModel
	err = r.db.Get().
		Where("id NOT IN ?", excludeIDs).
		Limit(limit).
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
