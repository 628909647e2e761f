package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"adminhub/internal/domain"
)

const (
	defaultSeedCount = 10
	maxSeedCount     = 100
)

type enrollmentService struct {
	enrollmentRepo domain.EnrollmentRepository
	courseRepo     domain.CourseRepository
	contextTimeout time.Duration
}

func NewEnrollmentService(enrollmentRepo domain.EnrollmentRepository, courseRepo domain.CourseRepository, timeout time.Duration) domain.EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		contextTimeout: timeout,
	}
}

func (s *enrollmentService) ListCourseEnrollments(ctx context.Context, courseID int64) ([]*domain.Enrollment, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("get course: %w", err)
	}

	enrollments, err := s.enrollmentRepo.ListByCourseID(ctx, courseID)
	if err != nil {
		return nil, 0, fmt.Errorf("list enrollments: %w", err)
	}
	if enrollments == nil {
		enrollments = []*domain.Enrollment{}
	}
	total, err := s.enrollmentRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return nil, 0, fmt.Errorf("count enrollments: %w", err)
	}
	return enrollments, total, nil
}

// SeedDemo inserts synthetic enrollments for a course. It only runs when
// called explicitly; listing enrollments never seeds.
func (s *enrollmentService) SeedDemo(ctx context.Context, courseID int64, count int) ([]*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	if count <= 0 {
		count = defaultSeedCount
	}
	if count > maxSeedCount {
		count = maxSeedCount
	}

	enrollments := make([]*domain.Enrollment, 0, count)
	for i := 0; i < count; i++ {
		enrollments = append(enrollments, &domain.Enrollment{
			CourseID: courseID,
			UserID:   int64(1000 + i),
			Progress: rand.Intn(101),
		})
	}
	if err := s.enrollmentRepo.BulkInsert(ctx, enrollments); err != nil {
		return nil, fmt.Errorf("seed enrollments: %w", err)
	}
	return enrollments, nil
}
