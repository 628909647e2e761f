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

type examService struct {
	examRepo       domain.ExamRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewExamService(examRepo domain.ExamRepository, logger *slog.Logger, timeout time.Duration) domain.ExamService {
	return &examService{
		examRepo:       examRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *examService) CreateExam(ctx context.Context, fields map[string]any, children *domain.ExamChildren) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, ve := validate.Exam(fields)
	if ve != nil {
		return 0, ve
	}
	if p.Status == "" {
		p.Status = domain.DefaultExamStatus
	}

	id, err := s.examRepo.CreateWithChildren(ctx, p, children)
	if err != nil {
		return 0, fmt.Errorf("create exam: %w", err)
	}
	return id, nil
}

func (s *examService) UpdateExam(ctx context.Context, id int64, fields map[string]any, children *domain.ExamChildren) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get exam: %w", err)
	}

	p, ve := validate.Exam(fields)
	if ve != nil {
		return ve
	}
	if p.Status == "" {
		p.Status = current.Status
	}

	if err := s.examRepo.UpdateWithChildren(ctx, id, p, children); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update exam: %w", err)
	}
	return nil
}

func (s *examService) UpdateExamStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := domain.NormalizeStatus(status, domain.ExamStatuses)
	if err != nil {
		return err
	}
	if err := s.examRepo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update exam status: %w", err)
	}
	return nil
}

func (s *examService) DeleteExam(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.examRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete exam: %w", err)
	}
	return nil
}

func (s *examService) GetExamDetail(ctx context.Context, id int64) (*domain.ExamDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}

	detail := &domain.ExamDetail{
		Exam:      exam,
		Questions: []domain.ExamQuestionItem{},
	}

	if questions, err := s.examRepo.ListQuestions(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list exam questions failed", "exam_id", id, "err", err)
	} else if questions != nil {
		detail.Questions = questions
	}

	return detail, nil
}

func (s *examService) ListExams(ctx context.Context, params domain.PaginationParams) ([]*domain.Exam, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	exams, total, err := s.examRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list exams: %w", err)
	}
	if exams == nil {
		exams = []*domain.Exam{}
	}
	return exams, total, nil
}
