package admin

import (
	"time"

	"gorm.io/datatypes"
)

const StatsSnapshotsTableName = "stats_snapshots"

// Stats is the live dashboard summary
type Stats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalPosts   int64 `json:"totalPosts"`
	AdminUsers   int64 `json:"adminUsers"`
	RegularUsers int64 `json:"regularUsers"`
}

// StatsSnapshotModel is a persisted point-in-time copy of the dashboard
// stats, written by the daily cron job.
type StatsSnapshotModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Counts    datatypes.JSON `gorm:"not null" json:"counts"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (StatsSnapshotModel) TableName() string {
	return StatsSnapshotsTableName
}
