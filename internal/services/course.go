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

type courseService struct {
	courseRepo     domain.CourseRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewCourseService(courseRepo domain.CourseRepository, logger *slog.Logger, timeout time.Duration) domain.CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, fields map[string]any, children *domain.CourseChildren) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, ve := validate.Course(fields)
	if ve != nil {
		return 0, ve
	}
	if p.Status == "" {
		p.Status = domain.DefaultCourseStatus
	}

	id, err := s.courseRepo.CreateWithChildren(ctx, p, children)
	if err != nil {
		return 0, fmt.Errorf("create course: %w", err)
	}
	return id, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, id int64, fields map[string]any, children *domain.CourseChildren) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get course: %w", err)
	}

	p, ve := validate.Course(fields)
	if ve != nil {
		return ve
	}
	if p.Status == "" {
		p.Status = current.Status
	}

	if err := s.courseRepo.UpdateWithChildren(ctx, id, p, children); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (s *courseService) UpdateCourseStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := domain.NormalizeStatus(status, domain.CourseStatuses)
	if err != nil {
		return err
	}
	if err := s.courseRepo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update course status: %w", err)
	}
	return nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.courseRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (s *courseService) GetCourseDetail(ctx context.Context, id int64) (*domain.CourseDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	detail := &domain.CourseDetail{
		Course:  course,
		Modules: []domain.CourseModuleItem{},
		Lessons: []domain.CourseLessonItem{},
	}

	if modules, err := s.courseRepo.ListModules(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list course modules failed", "course_id", id, "err", err)
	} else if modules != nil {
		detail.Modules = modules
	}
	if lessons, err := s.courseRepo.ListLessons(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list course lessons failed", "course_id", id, "err", err)
	} else if lessons != nil {
		detail.Lessons = lessons
	}

	return detail, nil
}

func (s *courseService) ListCourses(ctx context.Context, params domain.PaginationParams) ([]*domain.Course, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	courses, total, err := s.courseRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	if courses == nil {
		courses = []*domain.Course{}
	}
	return courses, total, nil
}
