package game

import (
	"github.com/sociable/sociableapi/database"
)

type Repository struct {
	db *database.Provider
}

func NewRepository(db *database.Provider) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(g *GameModel) error {
	return r.db.Get().Create(g).Error
}

// List returns all games ordered by popularity then rating
func (r *Repository) List() ([]GameModel, error) {
	games := []GameModel{}
	err := r.db.Get().
		Order("players_count DESC").
		Order("rating DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
