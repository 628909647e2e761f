package domain

import (
	"context"
	"time"
)

// Report is a user-submitted report reviewed by admins.
type Report struct {
	ID         int64     `json:"id"`
	ReporterID int64     `json:"reporter_id"`
	TargetType string    `json:"target_type"`
	TargetID   int64     `json:"target_id"`
	Reason     string    `json:"reason"`
	Details    string    `json:"details"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReportRepository defines storage for reports.
type ReportRepository interface {
	GetByID(ctx context.Context, id int64) (*Report, error)
	List(ctx context.Context, status string, params PaginationParams) ([]*Report, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ReportService manages report review.
type ReportService interface {
	GetReport(ctx context.Context, id int64) (*Report, error)
	ListReports(ctx context.Context, status string, params PaginationParams) ([]*Report, int, error)
	UpdateReportStatus(ctx context.Context, id int64, status string) error
}
