package domain

import (
	"fmt"
	"strings"
)

// Status sets per entity kind. Any declared status may transition to any
// other declared status; this is an administrative override model, not a
// forward-only workflow.
var (
	EventStatuses       = []string{"upcoming", "ongoing", "completed", "cancelled"}
	CourseStatuses      = []string{"draft", "published"}
	ExamStatuses        = []string{"draft", "published", "archived"}
	CompetitionStatuses = []string{"upcoming", "ongoing", "completed", "cancelled"}
	UserStatuses        = []string{"active", "suspended"}
	ReportStatuses      = []string{"open", "reviewing", "resolved", "dismissed"}
)

// Default statuses applied on creation when the payload omits one.
const (
	DefaultEventStatus       = "upcoming"
	DefaultCourseStatus      = "draft"
	DefaultExamStatus        = "draft"
	DefaultCompetitionStatus = "upcoming"
	DefaultUserStatus        = "active"
	DefaultReportStatus      = "open"
)

// NormalizeStatus lowercases s and checks membership in allowed. On failure
// it returns a ValidationError naming the full allowed set so the caller can
// correct the request.
func NormalizeStatus(s string, allowed []string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if normalized == a {
			return normalized, nil
		}
	}
	return "", NewValidationError(
		fmt.Sprintf("status must be one of: %s", strings.Join(allowed, ", ")),
	)
}
