package domain

import (
	"context"
	"time"
)

// Enrollment is a user's enrollment in a course.
type Enrollment struct {
	ID         int64     `json:"id"`
	CourseID   int64     `json:"course_id"`
	UserID     int64     `json:"user_id"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// EnrollmentRepository defines storage for enrollments.
type EnrollmentRepository interface {
	ListByCourseID(ctx context.Context, courseID int64) ([]*Enrollment, error)
	CountByCourseID(ctx context.Context, courseID int64) (int, error)
	BulkInsert(ctx context.Context, enrollments []*Enrollment) error
}

// EnrollmentService reads enrollments and seeds demo data on explicit request.
// Reads never seed; seeding is its own operation.
type EnrollmentService interface {
	ListCourseEnrollments(ctx context.Context, courseID int64) ([]*Enrollment, int, error)
	SeedDemo(ctx context.Context, courseID int64, count int) ([]*Enrollment, error)
}
