// Package search implements the cross-entity substring search
package search

import (
	"strings"

	"github.com/sociable/sociableapi/api/game"
	"github.com/sociable/sociableapi/api/group"
	"github.com/sociable/sociableapi/api/page"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
)

const resultLimit = 10

// Results groups the per-entity search buckets
type Results struct {
	Users  []user.UserModel   `json:"users"`
	Groups []group.GroupModel `json:"groups"`
	Pages  []page.PageModel   `json:"pages"`
	Games  []game.GameModel   `json:"games"`
}

type Service struct {
	db *database.Provider
}

func NewService(db *database.Provider) *Service {
	return &Service{db: db}
}

// Search runs a case-insensitive substring match across users, public
// groups, pages and games, capped per bucket.
func (s *Service) Search(query string) (*Results, error) {
	term := "%" + strings.ToLower(query) + "%"
	results := &Results{
		Users:  []user.UserModel{},
		Groups: []group.GroupModel{},
		Pages:  []page.PageModel{},
		Games:  []game.GameModel{},
	}

	err := s.db.Get().
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(username) LIKE ?", term, term, term).
		Limit(resultLimit).
		Find(&results.Users).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Get().
		Where("is_private = ? AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", false, term, term).
		Limit(resultLimit).
		Find(&results.Groups).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Get().
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term).
		Limit(resultLimit).
		Find(&results.Pages).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Get().
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", term, term, term).
		Limit(resultLimit).
		Find(&results.Games).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
