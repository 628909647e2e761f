package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adminhub/internal/domain"
)

type competitionRepository struct {
	DB *sql.DB
}

func NewCompetitionRepository(db *sql.DB) domain.CompetitionRepository {
	return &competitionRepository{
		DB: db,
	}
}

const competitionColumns = `id, title, description, category, start_date, end_date, difficulty, max_participants, status, created_at, updated_at`

func scanCompetition(row interface{ Scan(...any) error }) (*domain.Competition, error) {
	c := &domain.Competition{}
	var diffNull sql.NullString
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.StartDate, &c.EndDate,
		&diffNull, &c.MaxParticipants, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if diffNull.Valid {
		c.Difficulty = diffNull.String
	}
	return c, nil
}

func (r *competitionRepository) CreateWithChildren(ctx context.Context, p *domain.CompetitionPayload, ch *domain.CompetitionChildren) (int64, error) {
	var id int64
	err := WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO competitions (title, description, category, start_date, end_date, difficulty, max_participants, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query,
			p.Title, p.Description, p.Category, p.StartDate, p.EndDate,
			p.Difficulty, p.MaxParticipants, p.Status,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert competition: %w", err)
		}
		return insertCompetitionChildren(ctx, tx, id, ch)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *competitionRepository) UpdateWithChildren(ctx context.Context, id int64, p *domain.CompetitionPayload, ch *domain.CompetitionChildren) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE competitions
			SET title = $1, description = $2, category = $3, start_date = $4, end_date = $5, difficulty = $6, max_participants = $7, status = $8, updated_at = NOW()
			WHERE id = $9 AND deleted_at IS NULL
		`
		result, err := tx.ExecContext(ctx, query,
			p.Title, p.Description, p.Category, p.StartDate, p.EndDate,
			p.Difficulty, p.MaxParticipants, p.Status, id,
		)
		if err != nil {
			return fmt.Errorf("update competition: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		if ch == nil {
			return nil
		}
		if ch.Rounds != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM competition_rounds WHERE competition_id = $1`, id); err != nil {
				return fmt.Errorf("clear competition rounds: %w", err)
			}
		}
		if ch.Prizes != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM competition_prizes WHERE competition_id = $1`, id); err != nil {
				return fmt.Errorf("clear competition prizes: %w", err)
			}
		}
		return insertCompetitionChildren(ctx, tx, id, ch)
	})
}

func insertCompetitionChildren(ctx context.Context, tx *sql.Tx, competitionID int64, ch *domain.CompetitionChildren) error {
	if ch == nil {
		return nil
	}
	for _, round := range ch.Rounds {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO competition_rounds (competition_id, round_number, name, start_date)
			VALUES ($1, $2, $3, $4)
		`, competitionID, round.RoundNumber, round.Name, round.StartDate)
		if err != nil {
			return fmt.Errorf("insert competition round: %w", err)
		}
	}
	for _, prize := range ch.Prizes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO competition_prizes (competition_id, rank, prize)
			VALUES ($1, $2, $3)
		`, competitionID, prize.Rank, prize.Prize)
		if err != nil {
			return fmt.Errorf("insert competition prize: %w", err)
		}
	}
	return nil
}

func (r *competitionRepository) GetByID(ctx context.Context, id int64) (*domain.Competition, error) {
	query := `
		SELECT ` + competitionColumns + `
		FROM competitions
		WHERE id = $1 AND deleted_at IS NULL
	`
	c, err := scanCompetition(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *competitionRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Competition, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM competitions WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + competitionColumns + `
		FROM competitions
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	competitions := make([]*domain.Competition, 0)
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			return nil, 0, err
		}
		competitions = append(competitions, c)
	}
	return competitions, total, rows.Err()
}

func (r *competitionRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE competitions SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
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

// SoftDelete marks the competition deleted without cascading to rounds or prizes.
func (r *competitionRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE competitions SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
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

func (r *competitionRepository) ListRounds(ctx context.Context, competitionID int64) ([]domain.CompetitionRoundItem, error) {
	query := `
		SELECT round_number, name, start_date
		FROM competition_rounds
		WHERE competition_id = $1
		ORDER BY round_number
	`
	rows, err := r.DB.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rounds := make([]domain.CompetitionRoundItem, 0)
	for rows.Next() {
		var item domain.CompetitionRoundItem
		if err := rows.Scan(&item.RoundNumber, &item.Name, &item.StartDate); err != nil {
			return nil, err
		}
		rounds = append(rounds, item)
	}
	return rounds, rows.Err()
}

func (r *competitionRepository) ListPrizes(ctx context.Context, competitionID int64) ([]domain.PrizeItem, error) {
	query := `
		SELECT rank, prize
		FROM competition_prizes
		WHERE competition_id = $1
		ORDER BY rank
	`
	rows, err := r.DB.QueryContext(ctx, query, competitionID)
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
