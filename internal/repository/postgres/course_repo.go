package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adminhub/internal/domain"
)

type courseRepository struct {
	DB *sql.DB
}

func NewCourseRepository(db *sql.DB) domain.CourseRepository {
	return &courseRepository{
		DB: db,
	}
}

const courseColumns = `id, title, description, category, difficulty, price, status, created_at, updated_at`

func scanCourse(row interface{ Scan(...any) error }) (*domain.Course, error) {
	c := &domain.Course{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Difficulty,
		&c.Price, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *courseRepository) CreateWithChildren(ctx context.Context, p *domain.CoursePayload, ch *domain.CourseChildren) (int64, error) {
	var id int64
	err := WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO courses (title, description, category, difficulty, price, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query,
			p.Title, p.Description, p.Category, p.Difficulty, p.Price, p.Status,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert course: %w", err)
		}
		return insertCourseChildren(ctx, tx, id, ch)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *courseRepository) UpdateWithChildren(ctx context.Context, id int64, p *domain.CoursePayload, ch *domain.CourseChildren) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE courses
			SET title = $1, description = $2, category = $3, difficulty = $4, price = $5, status = $6, updated_at = NOW()
			WHERE id = $7 AND deleted_at IS NULL
		`
		result, err := tx.ExecContext(ctx, query,
			p.Title, p.Description, p.Category, p.Difficulty, p.Price, p.Status, id,
		)
		if err != nil {
			return fmt.Errorf("update course: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		if ch == nil {
			return nil
		}
		if ch.Modules != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM course_modules WHERE course_id = $1`, id); err != nil {
				return fmt.Errorf("clear course modules: %w", err)
			}
		}
		if ch.Lessons != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM course_lessons WHERE course_id = $1`, id); err != nil {
				return fmt.Errorf("clear course lessons: %w", err)
			}
		}
		return insertCourseChildren(ctx, tx, id, ch)
	})
}

func insertCourseChildren(ctx context.Context, tx *sql.Tx, courseID int64, ch *domain.CourseChildren) error {
	if ch == nil {
		return nil
	}
	for _, m := range ch.Modules {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO course_modules (course_id, position, title, summary)
			VALUES ($1, $2, $3, $4)
		`, courseID, m.Position, m.Title, m.Summary)
		if err != nil {
			return fmt.Errorf("insert course module: %w", err)
		}
	}
	for _, l := range ch.Lessons {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO course_lessons (course_id, position, title, duration_minutes)
			VALUES ($1, $2, $3, $4)
		`, courseID, l.Position, l.Title, l.DurationMinutes)
		if err != nil {
			return fmt.Errorf("insert course lesson: %w", err)
		}
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id = $1 AND deleted_at IS NULL
	`
	c, err := scanCourse(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *courseRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Course, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	courses := make([]*domain.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}

func (r *courseRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE courses SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
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

// SoftDelete marks the course deleted without cascading to modules or
// lessons; child reads are scoped through a live parent.
func (r *courseRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE courses SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *courseRepository) ListModules(ctx context.Context, courseID int64) ([]domain.CourseModuleItem, error) {
	query := `
		SELECT position, title, summary
		FROM course_modules
		WHERE course_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	modules := make([]domain.CourseModuleItem, 0)
	for rows.Next() {
		var m domain.CourseModuleItem
		if err := rows.Scan(&m.Position, &m.Title, &m.Summary); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *courseRepository) ListLessons(ctx context.Context, courseID int64) ([]domain.CourseLessonItem, error) {
	query := `
		SELECT position, title, duration_minutes
		FROM course_lessons
		WHERE course_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	lessons := make([]domain.CourseLessonItem, 0)
	for rows.Next() {
		var l domain.CourseLessonItem
		if err := rows.Scan(&l.Position, &l.Title, &l.DurationMinutes); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}
