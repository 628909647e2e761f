package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adminhub/internal/domain"
)

type examRepository struct {
	DB *sql.DB
}

func NewExamRepository(db *sql.DB) domain.ExamRepository {
	return &examRepository{
		DB: db,
	}
}

const examColumns = `id, title, description, subject, exam_date, exam_time, duration_minutes, difficulty, status, created_at, updated_at`

func scanExam(row interface{ Scan(...any) error }) (*domain.Exam, error) {
	e := &domain.Exam{}
	var descNull, diffNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &descNull, &e.Subject, &e.ExamDate, &e.ExamTime,
		&e.DurationMinutes, &diffNull, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = descNull.String
	}
	if diffNull.Valid {
		e.Difficulty = diffNull.String
	}
	return e, nil
}

func (r *examRepository) CreateWithChildren(ctx context.Context, p *domain.ExamPayload, ch *domain.ExamChildren) (int64, error) {
	var id int64
	err := WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO exams (title, description, subject, exam_date, exam_time, duration_minutes, difficulty, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query,
			p.Title, p.Description, p.Subject, p.ExamDate, p.ExamTime,
			p.DurationMinutes, p.Difficulty, p.Status,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert exam: %w", err)
		}
		return insertExamQuestions(ctx, tx, id, ch)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *examRepository) UpdateWithChildren(ctx context.Context, id int64, p *domain.ExamPayload, ch *domain.ExamChildren) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE exams
			SET title = $1, description = $2, subject = $3, exam_date = $4, exam_time = $5, duration_minutes = $6, difficulty = $7, status = $8, updated_at = NOW()
			WHERE id = $9 AND deleted_at IS NULL
		`
		result, err := tx.ExecContext(ctx, query,
			p.Title, p.Description, p.Subject, p.ExamDate, p.ExamTime,
			p.DurationMinutes, p.Difficulty, p.Status, id,
		)
		if err != nil {
			return fmt.Errorf("update exam: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		if ch == nil || ch.Questions == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM exam_questions WHERE exam_id = $1`, id); err != nil {
			return fmt.Errorf("clear exam questions: %w", err)
		}
		return insertExamQuestions(ctx, tx, id, ch)
	})
}

func insertExamQuestions(ctx context.Context, tx *sql.Tx, examID int64, ch *domain.ExamChildren) error {
	if ch == nil {
		return nil
	}
	for _, q := range ch.Questions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO exam_questions (exam_id, position, prompt, answer, points)
			VALUES ($1, $2, $3, $4, $5)
		`, examID, q.Position, q.Prompt, q.Answer, q.Points)
		if err != nil {
			return fmt.Errorf("insert exam question: %w", err)
		}
	}
	return nil
}

func (r *examRepository) GetByID(ctx context.Context, id int64) (*domain.Exam, error) {
	query := `
		SELECT ` + examColumns + `
		FROM exams
		WHERE id = $1 AND deleted_at IS NULL
	`
	e, err := scanExam(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *examRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Exam, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exams WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + examColumns + `
		FROM exams
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	exams := make([]*domain.Exam, 0)
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, 0, err
		}
		exams = append(exams, e)
	}
	return exams, total, rows.Err()
}

func (r *examRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE exams SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
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

// SoftDelete marks the exam deleted without cascading to questions.
func (r *examRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE exams SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
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

func (r *examRepository) ListQuestions(ctx context.Context, examID int64) ([]domain.ExamQuestionItem, error) {
	query := `
		SELECT position, prompt, answer, points
		FROM exam_questions
		WHERE exam_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	questions := make([]domain.ExamQuestionItem, 0)
	for rows.Next() {
		var q domain.ExamQuestionItem
		if err := rows.Scan(&q.Position, &q.Prompt, &q.Answer, &q.Points); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
