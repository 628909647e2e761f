package domain

import (
	"context"
	"time"
)

// Event is a platform event managed by the back-office.
type Event struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	EventDate    string    `json:"event_date"`
	EventTime    string    `json:"event_time"`
	Price        float64   `json:"price"`
	MaxAttendees int       `json:"max_attendees"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EventPayload is the validated, normalized set of event fields handed to the
// repository. Produced by the validate package; never built from raw input.
type EventPayload struct {
	Title        string
	Description  string
	Category     string
	Location     string
	EventDate    string
	EventTime    string
	Price        float64
	MaxAttendees int
	Status       string
}

// EventScheduleItem is one schedule row of an event.
type EventScheduleItem struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Activity  string `json:"activity"`
}

// PrizeItem is one prize row. Shared by events and competitions.
type PrizeItem struct {
	Rank  int    `json:"rank"`
	Prize string `json:"prize"`
}

// EventChildren holds the child collections of an event write. A nil slice
// means the collection was not supplied and must be left untouched on update;
// an empty non-nil slice clears the collection.
type EventChildren struct {
	Schedules    []EventScheduleItem
	Languages    []string
	Technologies []string
	Prizes       []PrizeItem
}

// EventDetail is the assembled detail view of an event and its children.
type EventDetail struct {
	Event        *Event              `json:"event"`
	Schedules    []EventScheduleItem `json:"schedules"`
	Languages    []string            `json:"languages"`
	Technologies []string            `json:"technologies"`
	Prizes       []PrizeItem         `json:"prizes"`
}

// EventRepository defines storage for events and their child collections.
// CreateWithChildren and UpdateWithChildren run inside a single transaction;
// either every row lands or none do.
type EventRepository interface {
	CreateWithChildren(ctx context.Context, p *EventPayload, ch *EventChildren) (int64, error)
	UpdateWithChildren(ctx context.Context, id int64, p *EventPayload, ch *EventChildren) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
	ListSchedule(ctx context.Context, eventID int64) ([]EventScheduleItem, error)
	ListLanguages(ctx context.Context, eventID int64) ([]string, error)
	ListTechnologies(ctx context.Context, eventID int64) ([]string, error)
	ListPrizes(ctx context.Context, eventID int64) ([]PrizeItem, error)
}

// EventService is the aggregate writer and read side for events.
type EventService interface {
	CreateEvent(ctx context.Context, fields map[string]any, children *EventChildren) (int64, error)
	UpdateEvent(ctx context.Context, id int64, fields map[string]any, children *EventChildren) error
	UpdateEventStatus(ctx context.Context, id int64, status string) error
	DeleteEvent(ctx context.Context, id int64) error
	GetEventDetail(ctx context.Context, id int64) (*EventDetail, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
