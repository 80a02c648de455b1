package game

import (
	"time"
)

const GamesTableName = "games"

// GameModel is a directory entry for an embedded game
type GameModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `gorm:"not null" json:"category"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	PlayURL      string    `json:"playUrl,omitempty"`
	PlayersCount int       `gorm:"not null;default:0" json:"playersCount"`
	Rating       int       `gorm:"not null;default:0" json:"rating"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (GameModel) TableName() string {
	return GamesTableName
}

// CreateGameRequest is the body for POST /api/games
type CreateGameRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PlayURL      string `json:"playUrl"`
}
