package domain

import (
	"context"
	"time"
)

// Course is a course offered on the platform.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CoursePayload is the validated, normalized set of course fields.
type CoursePayload struct {
	Title       string
	Description string
	Category    string
	Difficulty  string
	Price       float64
	Status      string
}

// CourseModuleItem is one module row of a course.
type CourseModuleItem struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
}

// CourseLessonItem is one lesson row of a course.
type CourseLessonItem struct {
	Position        int    `json:"position"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

// CourseChildren holds the child collections of a course write. Nil means
// untouched on update; empty non-nil clears.
type CourseChildren struct {
	Modules []CourseModuleItem
	Lessons []CourseLessonItem
}

// CourseDetail is the assembled detail view of a course and its children.
type CourseDetail struct {
	Course  *Course            `json:"course"`
	Modules []CourseModuleItem `json:"modules"`
	Lessons []CourseLessonItem `json:"lessons"`
}

// CourseRepository defines storage for courses and their child collections.
type CourseRepository interface {
	CreateWithChildren(ctx context.Context, p *CoursePayload, ch *CourseChildren) (int64, error)
	UpdateWithChildren(ctx context.Context, id int64, p *CoursePayload, ch *CourseChildren) error
	GetByID(ctx context.Context, id int64) (*Course, error)
	List(ctx context.Context, params PaginationParams) ([]*Course, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
	ListModules(ctx context.Context, courseID int64) ([]CourseModuleItem, error)
	ListLessons(ctx context.Context, courseID int64) ([]CourseLessonItem, error)
}

// CourseService is the aggregate writer and read side for courses.
type CourseService interface {
	CreateCourse(ctx context.Context, fields map[string]any, children *CourseChildren) (int64, error)
	UpdateCourse(ctx context.Context, id int64, fields map[string]any, children *CourseChildren) error
	UpdateCourseStatus(ctx context.Context, id int64, status string) error
	DeleteCourse(ctx context.Context, id int64) error
	GetCourseDetail(ctx context.Context, id int64) (*CourseDetail, error)
	ListCourses(ctx context.Context, params PaginationParams) ([]*Course, int, error)
}
