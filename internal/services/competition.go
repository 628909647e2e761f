package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adminhub/internal/domain"
	"adminhub/internal/validate"
)

type competitionService struct {
	competitionRepo domain.CompetitionRepository
	logger          *slog.Logger
	contextTimeout  time.Duration
}

func NewCompetitionService(competitionRepo domain.CompetitionRepository, logger *slog.Logger, timeout time.Duration) domain.CompetitionService {
	return &competitionService{
		competitionRepo: competitionRepo,
		logger:          logger,
		contextTimeout:  timeout,
	}
}

func (s *competitionService) CreateCompetition(ctx context.Context, fields map[string]any, children *domain.CompetitionChildren) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, ve := validate.Competition(fields)
	if ve != nil {
		return 0, ve
	}
	if p.Status == "" {
		p.Status = domain.DefaultCompetitionStatus
	}

	id, err := s.competitionRepo.CreateWithChildren(ctx, p, children)
	if err != nil {
		return 0, fmt.Errorf("create competition: %w", err)
	}
	return id, nil
}

func (s *competitionService) UpdateCompetition(ctx context.Context, id int64, fields map[string]any, children *domain.CompetitionChildren) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get competition: %w", err)
	}

	p, ve := validate.Competition(fields)
	if ve != nil {
		return ve
	}
	if p.Status == "" {
		p.Status = current.Status
	}

	if err := s.competitionRepo.UpdateWithChildren(ctx, id, p, children); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update competition: %w", err)
	}
	return nil
}

func (s *competitionService) UpdateCompetitionStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := domain.NormalizeStatus(status, domain.CompetitionStatuses)
	if err != nil {
		return err
	}
	if err := s.competitionRepo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update competition status: %w", err)
	}
	return nil
}

func (s *competitionService) DeleteCompetition(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.competitionRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete competition: %w", err)
	}
	return nil
}

func (s *competitionService) GetCompetitionDetail(ctx context.Context, id int64) (*domain.CompetitionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	competition, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competition: %w", err)
	}

	detail := &domain.CompetitionDetail{
		Competition: competition,
		Rounds:      []domain.CompetitionRoundItem{},
		Prizes:      []domain.PrizeItem{},
	}

	if rounds, err := s.competitionRepo.ListRounds(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list competition rounds failed", "competition_id", id, "err", err)
	} else if rounds != nil {
		detail.Rounds = rounds
	}
	if prizes, err := s.competitionRepo.ListPrizes(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list competition prizes failed", "competition_id", id, "err", err)
	} else if prizes != nil {
		detail.Prizes = prizes
	}

	return detail, nil
}

func (s *competitionService) ListCompetitions(ctx context.Context, params domain.PaginationParams) ([]*domain.Competition, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	competitions, total, err := s.competitionRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list competitions: %w", err)
	}
	if competitions == nil {
		competitions = []*domain.Competition{}
	}
	return competitions, total, nil
}
