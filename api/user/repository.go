package user

import (
	"github.com/sociable/sociableapi/database"
)

type Repository struct {
	db *database.Provider
}

func NewRepository(db *database.Provider) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(id uint) (*UserModel, error) {
	var u UserModel
	if err := r.db.Get().First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByEmail(email string) (*UserModel, error) {
	var u UserModel
	if err := r.db.Get().Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByUsername(username string) (*UserModel, error) {
	var u UserModel
	if err := r.db.Get().Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(u *UserModel) error {
	return r.db.Get().Create(u).Error
}

// UpdateProfile applies the allow-listed column updates and returns the fresh row
func (r *Repository) UpdateProfile(id uint, updates map[string]interface{}) (*UserModel, error) {
	if len(updates) > 0 {
		if err := r.db.Get().Model(&UserModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

// GetWithFriendCount returns the user with the count of accepted friendships
// in either direction of the edge.
func (r *Repository) GetWithFriendCount(id uint) (*WithFriendCount, error) {
	u, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	var count int64
	err = r.db.Get().Table("friendships").
		Where("(user_id = ? OR friend_id = ?) AND status = ?", id, id, "accepted").
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	return &WithFriendCount{UserModel: *u, FriendsCount: count}, nil
}

func (r *Repository) All() ([]UserModel, error) {
	var users []UserModel
	if err := r.db.Get().Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Get().Delete(&UserModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Get().Model(&UserModel{}).Count(&count).Error
	return count, err
}
