// Package admin implements the admin dashboard endpoints and stats snapshots
package admin

import (
	"encoding/json"

	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
)

type Service struct {
	db *database.Provider
}

func NewService(db *database.Provider) *Service {
	return &Service{db: db}
}

// Stats computes the live dashboard counters
func (s *Service) Stats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Get().Model(&user.UserModel{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Get().Table("posts").Count(&stats.TotalPosts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Get().Model(&user.UserModel{}).Where("is_admin = ?", true).Count(&stats.AdminUsers).Error; err != nil {
		return nil, err
	}
	stats.RegularUsers = stats.TotalUsers - stats.AdminUsers

	return stats, nil
}

// Snapshot persists the current stats as a JSON row; used by the daily cron
func (s *Service) Snapshot() (*StatsSnapshotModel, error) {
	stats, err := s.Stats()
	if err != nil {
		return nil, err
	}

	counts, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}

	snapshot := &StatsSnapshotModel{Counts: counts}
	if err := s.db.Get().Create(snapshot).Error; err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SnapshotHistory returns recent snapshots, newest first
func (s *Service) SnapshotHistory(limit int) ([]StatsSnapshotModel, error) {
	snapshots := []StatsSnapshotModel{}
	err := s.db.Get().
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
