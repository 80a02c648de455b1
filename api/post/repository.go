package post

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

func (r *Repository) Create(p *PostModel) error {
	return r.db.Get().Create(p).Error
}

func (r *Repository) GetByID(id uint) (*PostModel, error) {
	var p PostModel
	if err := r.db.Get().First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts, newest first, with their author summaries
func (r *Repository) List() ([]PostWithUser, error) {
	var posts []PostModel
	if err := r.db.Get().Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return r.attachAuthors(posts)
}

// ListByUser returns one user's posts, newest first
func (r *Repository) ListByUser(userID uint) ([]PostWithUser, error) {
	var posts []PostModel
	if err := r.db.Get().Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return r.attachAuthors(posts)
}

func (r *Repository) attachAuthors(posts []PostModel) ([]PostWithUser, error) {
	result := make([]PostWithUser, 0, len(posts))
	if len(posts) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.UserID)
	}

	var authors []user.UserModel
	if err := r.db.Get().Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]user.Summary, len(authors))
	for _, a := range authors {
		byID[a.ID] = user.Summary{
			ID:           a.ID,
			Username:     a.Username,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			ProfilePhoto: a.ProfilePhoto,
		}
	}

	for _, p := range posts {
		result = append(result, PostWithUser{PostModel: p, User: byID[p.UserID]})
	}
	return result, nil
}

func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Get().Delete(&PostModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Get().Model(&PostModel{}).Count(&count).Error
	return count, err
}

// IsLiked reports whether the user has liked the post
func (r *Repository) IsLiked(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Get().Model(&LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// CreateLike records a like and bumps the post's like count
func (r *Repository) CreateLike(userID, postID uint) error {
	return r.db.Get().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&LikeModel{UserID: userID, PostID: postID}).Error; err != nil {
			return err
		}
		return tx.Model(&PostModel{}).Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

// DeleteLike removes a like and decrements the post's like count
func (r *Repository) DeleteLike(userID, postID uint) error {
	return r.db.Get().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&LikeModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&PostModel{}).Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count - 1")).Error
	})
}

// CreateComment records a comment and bumps the post's comment count
func (r *Repository) CreateComment(comment *CommentModel) error {
	return r.db.Get().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&PostModel{}).Where("id = ?", comment.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

// ListComments returns a post's comments in chronological order
func (r *Repository) ListComments(postID uint) ([]CommentWithUser, error) {
	var comments []CommentModel
	if err := r.db.Get().Where("post_id = ?", postID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}

	result := make([]CommentWithUser, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(comments))
	for _, cm := range comments {
		ids = append(ids, cm.UserID)
	}

	var authors []user.UserModel
	if err := r.db.Get().Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]user.Summary, len(authors))
	for _, a := range authors {
		byID[a.ID] = user.Summary{
			ID:           a.ID,
			Username:     a.Username,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			ProfilePhoto: a.ProfilePhoto,
		}
	}

	for _, cm := range comments {
		result = append(result, CommentWithUser{CommentModel: cm, User: byID[cm.UserID]})
	}
	return result, nil
}
