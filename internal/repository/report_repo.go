package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.Report) error
	UpdateReport(ctx context.Context, report *model.Report) error
	DeleteReport(ctx context.Context, reportID uint64) error
	GetReportByID(ctx context.Context, reportID uint64) (*model.Report, error)
}

type reportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepoImpl{db: db}
}

func (s *reportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *reportRepoImpl) UpdateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Save(report).Error
}

func (s *reportRepoImpl) DeleteReport(ctx context.Context, reportID uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Report{}, reportID).Error
}

func (s *reportRepoImpl) GetReportByID(ctx context.Context, reportID uint64) (*model.Report, error) {
	var report model.Report
	err := s.db.WithContext(ctx).First(&report, reportID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}
