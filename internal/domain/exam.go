package domain

import (
	"context"
	"time"
)

// Exam is an exam scheduled on the platform.
type Exam struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Subject         string    `json:"subject"`
	ExamDate        string    `json:"exam_date"`
	ExamTime        string    `json:"exam_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Difficulty      string    `json:"difficulty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExamPayload is the validated, normalized set of exam fields.
type ExamPayload struct {
	Title           string
	Description     string
	Subject         string
	ExamDate        string
	ExamTime        string
	DurationMinutes int
	Difficulty      string
	Status          string
}

// ExamQuestionItem is one question row of an exam.
type ExamQuestionItem struct {
	Position int    `json:"position"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
	Points   int    `json:"points"`
}

// ExamChildren holds the child collections of an exam write. Nil means
// untouched on update; empty non-nil clears.
type ExamChildren struct {
	Questions []ExamQuestionItem
}

// ExamDetail is the assembled detail view of an exam and its questions.
type ExamDetail struct {
	Exam      *Exam              `json:"exam"`
	Questions []ExamQuestionItem `json:"questions"`
}

// ExamRepository defines storage for exams and their questions.
type ExamRepository interface {
	CreateWithChildren(ctx context.Context, p *ExamPayload, ch *ExamChildren) (int64, error)
	UpdateWithChildren(ctx context.Context, id int64, p *ExamPayload, ch *ExamChildren) error
	GetByID(ctx context.Context, id int64) (*Exam, error)
	List(ctx context.Context, params PaginationParams) ([]*Exam, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context, examID int64) ([]ExamQuestionItem, error)
}

// ExamService is the aggregate writer and read side for exams.
type ExamService interface {
	CreateExam(ctx context.Context, fields map[string]any, children *ExamChildren) (int64, error)
	UpdateExam(ctx context.Context, id int64, fields map[string]any, children *ExamChildren) error
	UpdateExamStatus(ctx context.Context, id int64, status string) error
	DeleteExam(ctx context.Context, id int64) error
	GetExamDetail(ctx context.Context, id int64) (*ExamDetail, error)
	ListExams(ctx context.Context, params PaginationParams) ([]*Exam, int, error)
}
