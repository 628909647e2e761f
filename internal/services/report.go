package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adminhub/internal/domain"
)

type reportService struct {
	reportRepo     domain.ReportRepository
	contextTimeout time.Duration
}

func NewReportService(reportRepo domain.ReportRepository, timeout time.Duration) domain.ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		contextTimeout: timeout,
	}
}

func (s *reportService) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, status string, params domain.PaginationParams) ([]*domain.Report, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if status != "" {
		normalized, err := domain.NormalizeStatus(status, domain.ReportStatuses)
		if err != nil {
			return nil, 0, err
		}
		status = normalized
	}

	reports, total, err := s.reportRepo.List(ctx, status, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	if reports == nil {
		reports = []*domain.Report{}
	}
	return reports, total, nil
}

func (s *reportService) UpdateReportStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := domain.NormalizeStatus(status, domain.ReportStatuses)
	if err != nil {
		return err
	}
	if err := s.reportRepo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update report status: %w", err)
	}
	return nil
}
