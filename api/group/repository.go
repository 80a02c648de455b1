package group

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

// Create inserts a group and enrolls the creator as its admin member
func (r *Repository) Create(g *GroupModel) error {
	return r.db.Get().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		member := &GroupMemberModel{GroupID: g.ID, UserID: g.CreatedBy, Role: "admin"}
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		g.MembersCount = 1
		return tx.Model(&GroupModel{}).Where("id = ?", g.ID).
			Update("members_count", 1).Error
	})
}

func (r *Repository) GetByID(id uint) (*GroupModel, error) {
	var g GroupModel
	if err := r.db.Get().First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListPublic returns public groups ordered by member count with creator summaries
func (r *Repository) ListPublic() ([]GroupWithCreator, error) {
	var groups []GroupModel
	err := r.db.Get().
		Where("is_private = ?", false).
		Order("members_count DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return attachCreators(r.db.Get(), groups)
}

func attachCreators(db *gorm.DB, groups []GroupModel) ([]GroupWithCreator, error) {
	result := make([]GroupWithCreator, 0, len(groups))
	if len(groups) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.CreatedBy)
	}

	var creators []user.UserModel
	if err := db.Where("id IN ?", ids).Find(&creators).Error; err != nil {
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

	for _, g := range groups {
		result = append(result, GroupWithCreator{GroupModel: g, Creator: byID[g.CreatedBy]})
	}
	return result, nil
}

// IsMember reports whether the user belongs to the group
func (r *Repository) IsMember(userID, groupID uint) (bool, error) {
	var count int64
	err := r.db.Get().Model(&GroupMemberModel{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&count).Error
	return count > 0, err
}

// Join enrolls the user and bumps the member count
func (r *Repository) Join(userID, groupID uint) (*GroupMemberModel, error) {
	member := &GroupMemberModel{GroupID: groupID, UserID: userID, Role: "member"}
	err := r.db.Get().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return tx.Model(&GroupModel{}).Where("id = ?", groupID).
			Update("members_count", gorm.Expr("members_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Leave removes the membership and decrements the member count
func (r *Repository) Leave(userID, groupID uint) error {
	return r.db.Get().Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND group_id = ?", userID, groupID).
			Delete(&GroupMemberModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&GroupModel{}).Where("id = ?", groupID).
			Update("members_count", gorm.Expr("members_count - 1")).Error
	})
}
