package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"adminhub/internal/domain"
)

type enrollmentRepository struct {
	DB *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{
		DB: db,
	}
}

func (r *enrollmentRepository) ListByCourseID(ctx context.Context, courseID int64) ([]*domain.Enrollment, error) {
	query := `
		SELECT id, course_id, user_id, progress, enrolled_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrolled_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	enrollments := make([]*domain.Enrollment, 0)
	for rows.Next() {
		e := &domain.Enrollment{}
		if err := rows.Scan(&e.ID, &e.CourseID, &e.UserID, &e.Progress, &e.EnrolledAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepository) CountByCourseID(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// BulkInsert inserts the given enrollments inside one transaction; all land
// or none do.
func (r *enrollmentRepository) BulkInsert(ctx context.Context, enrollments []*domain.Enrollment) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		for _, e := range enrollments {
			err := tx.QueryRowContext(ctx, `
				INSERT INTO enrollments (course_id, user_id, progress, enrolled_at)
				VALUES ($1, $2, $3, NOW())
				RETURNING id, enrolled_at
			`, e.CourseID, e.UserID, e.Progress).Scan(&e.ID, &e.EnrolledAt)
			if err != nil {
				return fmt.Errorf("insert enrollment: %w", err)
			}
		}
		return nil
	})
}
