// Package validate holds the pure payload validators for the back-office
// aggregates. Each validator takes the raw decoded field map, normalizes key
// casing, checks every rule, and either returns a typed payload or a
// ValidationError listing all problems at once.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"adminhub/internal/domain"

	"time"
)

// Allowed enumeration values. Category-like fields are case-sensitive;
// difficulty and status are matched case-insensitively.
var (
	EventCategories       = []string{"Hackathon", "Workshop", "Seminar", "Webinar", "Meetup"}
	CourseCategories      = []string{"Programming", "Design", "Business", "Science", "Language"}
	ExamSubjects          = []string{"Math", "Physics", "Chemistry", "Biology", "Computer Science"}
	CompetitionCategories = []string{"Hackathon", "Quiz", "Robotics", "DataScience"}
	Difficulties          = []string{"beginner", "intermediate", "advanced"}
)

// timeRegex matches 24-hour HH:MM with optional :SS.
var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// dateRegex matches the YYYY-MM-DD shape; calendar validity is checked with time.Parse.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fields wraps a payload map with case-tolerant key lookup: camelCase,
// PascalCase and all-lowercase spellings of the same field are equivalent.
type fields map[string]any

func newFields(m map[string]any) fields {
	f := make(fields, len(m))
	for k, v := range m {
		f[strings.ToLower(k)] = v
	}
	return f
}

func (f fields) str(key string) (string, bool) {
	v, ok := f[strings.ToLower(key)]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// num returns the numeric value of key, falling back to 0 when absent.
// A present but non-numeric value is reported as a reason.
func (f fields) num(key, label string, reasons *[]string) float64 {
	v, ok := f[strings.ToLower(key)]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			*reasons = append(*reasons, fmt.Sprintf("%s must be a number", label))
			return 0
		}
		return parsed
	default:
		*reasons = append(*reasons, fmt.Sprintf("%s must be a number", label))
		return 0
	}
}

func validDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTime(s string) bool {
	return timeRegex.MatchString(s)
}

func inSet(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

func requireStr(f fields, key, label string, reasons *[]string) string {
	s, ok := f.str(key)
	if !ok {
		*reasons = append(*reasons, fmt.Sprintf("%s is required", label))
	}
	return s
}

func checkEnum(value, label string, set []string, reasons *[]string) {
	if value != "" && !inSet(value, set) {
		*reasons = append(*reasons, fmt.Sprintf("%s must be one of: %s", label, strings.Join(set, ", ")))
	}
}

func checkDate(value, label string, reasons *[]string) {
	if value != "" && !validDate(value) {
		*reasons = append(*reasons, fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", label))
	}
}

func checkTime(value, label string, reasons *[]string) {
	if value != "" && !validTime(value) {
		*reasons = append(*reasons, fmt.Sprintf("%s must be a valid 24-hour time in HH:MM or HH:MM:SS format", label))
	}
}

// difficulty normalizes to lowercase and checks membership; empty is allowed
// only when required is false.
func difficulty(f fields, required bool, reasons *[]string) string {
	s, ok := f.str("difficulty")
	if !ok {
		if required {
			*reasons = append(*reasons, "difficulty is required")
		}
		return ""
	}
	s = strings.ToLower(s)
	if !inSet(s, Difficulties) {
		*reasons = append(*reasons, fmt.Sprintf("difficulty must be one of: %s", strings.Join(Difficulties, ", ")))
		return ""
	}
	return s
}

// status validates an optional status field against the allowed set,
// case-insensitively. Absent status yields "" so the caller can apply the
// kind's default or keep the current value.
func status(f fields, allowed []string, reasons *[]string) string {
	s, ok := f.str("status")
	if !ok {
		return ""
	}
	normalized, err := domain.NormalizeStatus(s, allowed)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			*reasons = append(*reasons, ve.Reasons...)
		}
		return ""
	}
	return normalized
}

// Event validates and normalizes an event payload.
func Event(raw map[string]any) (*domain.EventPayload, *domain.ValidationError) {
	f := newFields(raw)
	var reasons []string

	p := &domain.EventPayload{}
	p.Title = requireStr(f, "title", "title", &reasons)
	p.Description = requireStr(f, "description", "description", &reasons)
	p.Category = requireStr(f, "category", "category", &reasons)
	p.EventDate = requireStr(f, "eventDate", "eventDate", &reasons)
	p.EventTime = requireStr(f, "eventTime", "eventTime", &reasons)

	checkEnum(p.Category, "category", EventCategories, &reasons)
	checkDate(p.EventDate, "eventDate", &reasons)
	checkTime(p.EventTime, "eventTime", &reasons)

	p.Location, _ = f.str("location")
	p.Price = f.num("price", "price", &reasons)
	p.MaxAttendees = int(f.num("maxAttendees", "maxAttendees", &reasons))
	p.Status = status(f, domain.EventStatuses, &reasons)

	if len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}
	return p, nil
}

// Course validates and normalizes a course payload.
func Course(raw map[string]any) (*domain.CoursePayload, *domain.ValidationError) {
	f := newFields(raw)
	var reasons []string

	p := &domain.CoursePayload{}
	p.Title = requireStr(f, "title", "title", &reasons)
	p.Description = requireStr(f, "description", "description", &reasons)
	p.Category = requireStr(f, "category", "category", &reasons)

	checkEnum(p.Category, "category", CourseCategories, &reasons)
	p.Difficulty = difficulty(f, true, &reasons)

	p.Price = f.num("price", "price", &reasons)
	p.Status = status(f, domain.CourseStatuses, &reasons)

	if len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}
	return p, nil
}

// Exam validates and normalizes an exam payload.
func Exam(raw map[string]any) (*domain.ExamPayload, *domain.ValidationError) {
	f := newFields(raw)
	var reasons []string

	p := &domain.ExamPayload{}
	p.Title = requireStr(f, "title", "title", &reasons)
	p.Subject = requireStr(f, "subject", "subject", &reasons)
	p.ExamDate = requireStr(f, "examDate", "examDate", &reasons)
	p.ExamTime = requireStr(f, "examTime", "examTime", &reasons)

	checkEnum(p.Subject, "subject", ExamSubjects, &reasons)
	checkDate(p.ExamDate, "examDate", &reasons)
	checkTime(p.ExamTime, "examTime", &reasons)

	p.DurationMinutes = int(f.num("durationMinutes", "durationMinutes", &reasons))
	if _, ok := f["durationminutes"]; !ok {
		reasons = append(reasons, "durationMinutes is required")
	} else if p.DurationMinutes <= 0 {
		reasons = append(reasons, "durationMinutes must be greater than zero")
	}

	p.Description, _ = f.str("description")
	p.Difficulty = difficulty(f, false, &reasons)
	p.Status = status(f, domain.ExamStatuses, &reasons)

	if len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}
	return p, nil
}

// Competition validates and normalizes a competition payload.
func Competition(raw map[string]any) (*domain.CompetitionPayload, *domain.ValidationError) {
	f := newFields(raw)
	var reasons []string

	p := &domain.CompetitionPayload{}
	p.Title = requireStr(f, "title", "title", &reasons)
	p.Description = requireStr(f, "description", "description", &reasons)
	p.Category = requireStr(f, "category", "category", &reasons)
	p.StartDate = requireStr(f, "startDate", "startDate", &reasons)
	p.EndDate = requireStr(f, "endDate", "endDate", &reasons)

	checkEnum(p.Category, "category", CompetitionCategories, &reasons)
	checkDate(p.StartDate, "startDate", &reasons)
	checkDate(p.EndDate, "endDate", &reasons)
	if validDate(p.StartDate) && validDate(p.EndDate) && p.EndDate < p.StartDate {
		reasons = append(reasons, "endDate must not be before startDate")
	}

	p.Difficulty = difficulty(f, false, &reasons)
	p.MaxParticipants = int(f.num("maxParticipants", "maxParticipants", &reasons))
	p.Status = status(f, domain.CompetitionStatuses, &reasons)

	if len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}
	return p, nil
}
