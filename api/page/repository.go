package page

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

func (r *Repository) Create(p *PageModel) error {
	return r.db.Get().Create(p).Error
}

func (r *Repository) GetByID(id uint) (*PageModel, error) {
	var p PageModel
	if err := r.db.Get().First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all pages ordered by follower count with creator summaries
func (r *Repository) List() ([]PageWithCreator, error) {
	var pages []PageModel
	if err := r.db.Get().Order("followers_count DESC").Find(&pages).Error; err != nil {
		return nil, err
	}

	result := make([]PageWithCreator, 0, len(pages))
	if len(pages) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, p.CreatedBy)
	}

	var creators []user.UserModel
	if err := r.db.Get().Where("id IN ?", ids).Find(&creators).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]user.Summary, len(creators))
	for _, u := range creators {
		byID[u.ID] = user.Summary{
			ID:           u.ID,
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			ProfilePhoto: u.ProfilePhoto,
		}
	}

	for _, p := range pages {
		result = append(result, PageWithCreator{PageModel: p, Creator: byID[p.CreatedBy]})
	}
	return result, nil
}

// IsFollowing reports whether the user follows the page
func (r *Repository) IsFollowing(userID, pageID uint) (bool, error) {
	var count int64
	err := r.db.Get().Model(&PageFollowerModel{}).
		Where("user_id = ? AND page_id = ?", userID, pageID).
		Count(&count).Error
	return count > 0, err
}

// Follow records the follow and bumps the follower count
func (r *Repository) Follow(userID, pageID uint) (*PageFollowerModel, error) {
	follower := &PageFollowerModel{PageID: pageID, UserID: userID}
	err := r.db.Get().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follower).Error; err != nil {
			return err
		}
		return tx.Model(&PageModel{}).Where("id = ?", pageID).
			Update("followers_count", gorm.Expr("followers_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return follower, nil
}

// Unfollow removes the follow and decrements the follower count
func (r *Repository) Unfollow(userID, pageID uint) error {
	return r.db.Get().Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND page_id = ?", userID, pageID).
			Delete(&PageFollowerModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&PageModel{}).Where("id = ?", pageID).
			Update("followers_count", gorm.Expr("followers_count - 1")).Error
	})
}
