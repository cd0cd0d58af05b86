package repository

import (
	"Pulseboard/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	SaveOrUpdateSnapshot(ctx context.Context, snapshot *model.MetricSnapshot) error
	GetSnapshotsByRange(ctx context.Context, accountID uint64, from, to time.Time) ([]*model.MetricSnapshot, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

func (s *snapshotRepoImpl) SaveOrUpdateSnapshot(ctx context.Context, snapshot *model.MetricSnapshot) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"metrics"}),
	}).Create(snapshot).Error
}

func (s *snapshotRepoImpl) GetSnapshotsByRange(ctx context.Context, accountID uint64, from, to time.Time) ([]*model.MetricSnapshot, error) {
	snapshots := make([]*model.MetricSnapshot, 0)
	result := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("metric_date >= ? AND metric_date <= ?", from, to).
		Order("metric_date ASC").
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}
