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

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateEvent validates the payload and writes the event plus its child
// collections as one atomic unit. Validation failures return before any
// transaction is opened.
func (s *eventService) CreateEvent(ctx context.Context, fields map[string]any, children *domain.EventChildren) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, ve := validate.Event(fields)
	if ve != nil {
		return 0, ve
	}
	if p.Status == "" {
		p.Status = domain.DefaultEventStatus
	}

	id, err := s.eventRepo.CreateWithChildren(ctx, p, children)
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

// UpdateEvent validates the payload and replaces the supplied child
// collections; collections omitted from the request are left untouched.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, fields map[string]any, children *domain.EventChildren) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	p, ve := validate.Event(fields)
	if ve != nil {
		return ve
	}
	if p.Status == "" {
		p.Status = current.Status
	}

	if err := s.eventRepo.UpdateWithChildren(ctx, id, p, children); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEventStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := domain.NormalizeStatus(status, domain.EventStatuses)
	if err != nil {
		return err
	}
	if err := s.eventRepo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update event status: %w", err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// GetEventDetail assembles the event and its child collections. Child
// fetches are best-effort: a failed secondary list is logged and replaced by
// an empty collection so the detail view stays available.
func (s *eventService) GetEventDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	detail := &domain.EventDetail{
		Event:        event,
		Schedules:    []domain.EventScheduleItem{},
		Languages:    []string{},
		Technologies: []string{},
		Prizes:       []domain.PrizeItem{},
	}

	if schedules, err := s.eventRepo.ListSchedule(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list event schedules failed", "event_id", id, "err", err)
	} else if schedules != nil {
		detail.Schedules = schedules
	}
	if languages, err := s.eventRepo.ListLanguages(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list event languages failed", "event_id", id, "err", err)
	} else if languages != nil {
		detail.Languages = languages
	}
	if technologies, err := s.eventRepo.ListTechnologies(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list event technologies failed", "event_id", id, "err", err)
	} else if technologies != nil {
		detail.Technologies = technologies
	}
	if prizes, err := s.eventRepo.ListPrizes(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "list event prizes failed", "event_id", id, "err", err)
	} else if prizes != nil {
		detail.Prizes = prizes
	}

	return detail, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}
