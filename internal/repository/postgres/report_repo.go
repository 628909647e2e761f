package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adminhub/internal/domain"
)

type reportRepository struct {
	DB *sql.DB
}

func NewReportRepository(db *sql.DB) domain.ReportRepository {
	return &reportRepository{
		DB: db,
	}
}

const reportColumns = `id, reporter_id, target_type, target_id, reason, details, status, created_at, updated_at`

func scanReport(row interface{ Scan(...any) error }) (*domain.Report, error) {
	rep := &domain.Report{}
	var detailsNull sql.NullString
	err := row.Scan(
		&rep.ID, &rep.ReporterID, &rep.TargetType, &rep.TargetID,
		&rep.Reason, &detailsNull, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if detailsNull.Valid {
		rep.Details = detailsNull.String
	}
	return rep, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE id = $1
	`
	rep, err := scanReport(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rep, nil
}

func (r *reportRepository) List(ctx context.Context, status string, params domain.PaginationParams) ([]*domain.Report, int, error) {
	where := `TRUE`
	args := []any{}
	if status != "" {
		where = `status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`
		SELECT `+reportColumns+`
		FROM reports
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, n+1, n+2)
	args = append(args, params.PageSize, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	reports := make([]*domain.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, rep)
	}
	return reports, total, rows.Err()
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE reports SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
