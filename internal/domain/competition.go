package domain

import (
	"context"
	"time"
)

// Competition is a competition hosted on the platform.
type Competition struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Difficulty      string    `json:"difficulty"`
	MaxParticipants int       `json:"max_participants"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CompetitionPayload is the validated, normalized set of competition fields.
type CompetitionPayload struct {
	Title           string
	Description     string
	Category        string
	StartDate       string
	EndDate         string
	Difficulty      string
	MaxParticipants int
	Status          string
}

// CompetitionRoundItem is one round row of a competition.
type CompetitionRoundItem struct {
	RoundNumber int    `json:"round_number"`
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
}

// CompetitionChildren holds the child collections of a competition write.
// Nil means untouched on update; empty non-nil clears.
type CompetitionChildren struct {
	Rounds []CompetitionRoundItem
	Prizes []PrizeItem
}

// CompetitionDetail is the assembled detail view of a competition and its children.
type CompetitionDetail struct {
	Competition *Competition           `json:"competition"`
	Rounds      []CompetitionRoundItem `json:"rounds"`
	Prizes      []PrizeItem            `json:"prizes"`
}

// CompetitionRepository defines storage for competitions and their child collections.
type CompetitionRepository interface {
	CreateWithChildren(ctx context.Context, p *CompetitionPayload, ch *CompetitionChildren) (int64, error)
	UpdateWithChildren(ctx context.Context, id int64, p *CompetitionPayload, ch *CompetitionChildren) error
	GetByID(ctx context.Context, id int64) (*Competition, error)
	List(ctx context.Context, params PaginationParams) ([]*Competition, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
	ListRounds(ctx context.Context, competitionID int64) ([]CompetitionRoundItem, error)
	ListPrizes(ctx context.Context, competitionID int64) ([]PrizeItem, error)
}

// CompetitionService is the aggregate writer and read side for competitions.
type CompetitionService interface {
	CreateCompetition(ctx context.Context, fields map[string]any, children *CompetitionChildren) (int64, error)
	UpdateCompetition(ctx context.Context, id int64, fields map[string]any, children *CompetitionChildren) error
	UpdateCompetitionStatus(ctx context.Context, id int64, status string) error
	DeleteCompetition(ctx context.Context, id int64) error
	GetCompetitionDetail(ctx context.Context, id int64) (*CompetitionDetail, error)
	ListCompetitions(ctx context.Context, params PaginationParams) ([]*Competition, int, error)
}
