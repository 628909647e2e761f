package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adminhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, description, category, location, event_date, event_time, price, max_attendees, status, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var locNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &locNull,
		&e.EventDate, &e.EventTime, &e.Price, &e.MaxAttendees, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if locNull.Valid {
		e.Location = locNull.String
	}
	return e, nil
}

// CreateWithChildren inserts the event and all supplied child rows inside one
// transaction. If any insert fails, the whole aggregate is rolled back and no
// row becomes visible.
func (r *eventRepository) CreateWithChildren(ctx context.Context, p *domain.EventPayload, ch *domain.EventChildren) (int64, error) {
	var id int64
	err := WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO events (title, description, category, location, event_date, event_time, price, max_attendees, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query,
			p.Title, p.Description, p.Category, p.Location,
			p.EventDate, p.EventTime, p.Price, p.MaxAttendees, p.Status,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		return insertEventChildren(ctx, tx, id, ch)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateWithChildren updates the event fields and replaces each supplied
// child collection (clear-and-reinsert) inside one transaction. Collections
// left nil are untouched.
func (r *eventRepository) UpdateWithChildren(ctx context.Context, id int64, p *domain.EventPayload, ch *domain.EventChildren) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE events
			SET title = $1, description = $2, category = $3, location = $4, event_date = $5, event_time = $6, price = $7, max_attendees = $8, status = $9, updated_at = NOW()
			WHERE id = $10 AND deleted_at IS NULL
		`
		result, err := tx.ExecContext(ctx, query,
			p.Title, p.Description, p.Category, p.Location,
			p.EventDate, p.EventTime, p.Price, p.MaxAttendees, p.Status, id,
		)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		if ch == nil {
			return nil
		}
		if ch.Schedules != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM event_schedules WHERE event_id = $1`, id); err != nil {
				return fmt.Errorf("clear event schedules: %w", err)
			}
		}
		if ch.Languages != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM event_languages WHERE event_id = $1`, id); err != nil {
				return fmt.Errorf("clear event languages: %w", err)
			}
		}
		if ch.Technologies != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM event_technologies WHERE event_id = $1`, id); err != nil {
				return fmt.Errorf("clear event technologies: %w", err)
			}
		}
		if ch.Prizes != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM event_prizes WHERE event_id = $1`, id); err != nil {
				return fmt.Errorf("clear event prizes: %w", err)
			}
		}
		return insertEventChildren(ctx, tx, id, ch)
	})
}

// insertEventChildren inserts every supplied child row with the event's FK,
// sequentially, in listed-collection order.
func insertEventChildren(ctx context.Context, tx *sql.Tx, eventID int64, ch *domain.EventChildren) error {
	if ch == nil {
		return nil
	}
	for _, s := range ch.Schedules {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_schedules (event_id, day, start_time, end_time, activity)
			VALUES ($1, $2, $3, $4, $5)
		`, eventID, s.Day, s.StartTime, s.EndTime, s.Activity)
		if err != nil {
			return fmt.Errorf("insert event schedule: %w", err)
		}
	}
	for _, lang := range ch.Languages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_languages (event_id, name)
			VALUES ($1, $2)
		`, eventID, lang)
		if err != nil {
			return fmt.Errorf("insert event language: %w", err)
		}
	}
	for _, tech := range ch.Technologies {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_technologies (event_id, name)
			VALUES ($1, $2)
		`, eventID, tech)
		if err != nil {
			return fmt.Errorf("insert event technology: %w", err)
		}
	}
	for _, prize := range ch.Prizes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_prizes (event_id, rank, prize)
			VALUES ($1, $2, $3)
		`, eventID, prize.Rank, prize.Prize)
		if err != nil {
			return fmt.Errorf("insert event prize: %w", err)
		}
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND deleted_at IS NULL
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
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

// SoftDelete marks the event deleted; the row stays in place and is excluded
// from all reads. Child rows are not cascaded: they become unreachable
// because every child read is scoped through a live parent.
func (r *eventRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE events SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
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

func (r *eventRepository) ListSchedule(ctx context.Context, eventID int64) ([]domain.EventScheduleItem, error) {
	query := `
		SELECT day, start_time, end_time, activity
		FROM event_schedules
		WHERE event_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]domain.EventScheduleItem, 0)
	for rows.Next() {
		var s domain.EventScheduleItem
		if err := rows.Scan(&s.Day, &s.StartTime, &s.EndTime, &s.Activity); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *eventRepository) ListLanguages(ctx context.Context, eventID int64) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM event_languages WHERE event_id = $1 ORDER BY id`, eventID)
}

func (r *eventRepository) ListTechnologies(ctx context.Context, eventID int64) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM event_technologies WHERE event_id = $1 ORDER BY id`, eventID)
}

func (r *eventRepository) listNames(ctx context.Context, query string, eventID int64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *eventRepository) ListPrizes(ctx context.Context, eventID int64) ([]domain.PrizeItem, error) {
	query := `
		SELECT rank, prize
		FROM event_prizes
		WHERE event_id = $1
		ORDER BY rank
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	prizes := make([]domain.PrizeItem, 0)
	for rows.Next() {
		var p domain.PrizeItem
		if err := rows.Scan(&p.Rank, &p.Prize); err != nil {
			return nil, err
		}
		prizes = append(prizes, p)
	}
	return prizes, rows.Err()
}
