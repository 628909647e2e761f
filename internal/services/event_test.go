package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"adminhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID     map[int64]*domain.Event
	children map[int64]*domain.EventChildren
	nextID   int64

	createErr    error
	updateErr    error
	listKidsErr  error
	createCalls  int
	updateCalls  int
	lastChildren *domain.EventChildren
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:     make(map[int64]*domain.Event),
		children: make(map[int64]*domain.EventChildren),
		nextID:   1,
	}
}

func (f *fakeEventRepo) CreateWithChildren(ctx context.Context, p *domain.EventPayload, ch *domain.EventChildren) (int64, error) {
	f.createCalls++
	f.lastChildren = ch
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.byID[id] = &domain.Event{
		ID:           id,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Location:     p.Location,
		EventDate:    p.EventDate,
		EventTime:    p.EventTime,
		Price:        p.Price,
		MaxAttendees: p.MaxAttendees,
		Status:       p.Status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if ch != nil {
		f.children[id] = ch
	}
	return id, nil
}

func (f *fakeEventRepo) UpdateWithChildren(ctx context.Context, id int64, p *domain.EventPayload, ch *domain.EventChildren) error {
	f.updateCalls++
	f.lastChildren = ch
	if f.updateErr != nil {
		return f.updateErr
	}
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Title = p.Title
	e.Status = p.Status
	if ch != nil {
		f.children[id] = ch
	}
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	return nil
}

func (f *fakeEventRepo) SoftDelete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) ListSchedule(ctx context.Context, eventID int64) ([]domain.EventScheduleItem, error) {
	if f.listKidsErr != nil {
		return nil, f.listKidsErr
	}
	if ch, ok := f.children[eventID]; ok {
		return ch.Schedules, nil
	}
	return nil, nil
}

func (f *fakeEventRepo) ListLanguages(ctx context.Context, eventID int64) ([]string, error) {
	if f.listKidsErr != nil {
		return nil, f.listKidsErr
	}
	if ch, ok := f.children[eventID]; ok {
		return ch.Languages, nil
	}
	return nil, nil
}

func (f *fakeEventRepo) ListTechnologies(ctx context.Context, eventID int64) ([]string, error) {
	if f.listKidsErr != nil {
		return nil, f.listKidsErr
	}
	if ch, ok := f.children[eventID]; ok {
		return ch.Technologies, nil
	}
	return nil, nil
}

func (f *fakeEventRepo) ListPrizes(ctx context.Context, eventID int64) ([]domain.PrizeItem, error) {
	if f.listKidsErr != nil {
		return nil, f.listKidsErr
	}
	if ch, ok := f.children[eventID]; ok {
		return ch.Prizes, nil
	}
	return nil, nil
}

func validEventFields() map[string]any {
	return map[string]any{
		"title":       "Go Conf",
		"description": "A conference about Go",
		"category":    "Hackathon",
		"eventDate":   "2026-09-01",
		"eventTime":   "09:30",
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name     string
		setup    func() *fakeEventRepo
		fields   map[string]any
		children *domain.EventChildren
		wantErr  bool
		wantVE   bool
		assert   func(t *testing.T, repo *fakeEventRepo, id int64)
	}{
		{
			name:   "success defaults status",
			setup:  newFakeEventRepo,
			fields: validEventFields(),
			children: &domain.EventChildren{
				Languages: []string{"Go", "Rust"},
				Prizes:    []domain.PrizeItem{{Rank: 1, Prize: "Cup"}},
			},
			assert: func(t *testing.T, repo *fakeEventRepo, id int64) {
				require.NotZero(t, id)
				e := repo.byID[id]
				require.NotNil(t, e)
				assert.Equal(t, "Go Conf", e.Title)
				assert.Equal(t, domain.DefaultEventStatus, e.Status)
				ch := repo.children[id]
				require.NotNil(t, ch)
				assert.Equal(t, []string{"Go", "Rust"}, ch.Languages)
				require.Len(t, ch.Prizes, 1)
			},
		},
		{
			name:  "validation failure skips repo",
			setup: newFakeEventRepo,
			fields: map[string]any{
				"title": "Go Conf",
			},
			wantErr: true,
			wantVE:  true,
			assert: func(t *testing.T, repo *fakeEventRepo, _ int64) {
				assert.Zero(t, repo.createCalls)
			},
		},
		{
			name: "repo error",
			setup: func() *fakeEventRepo {
				r := newFakeEventRepo()
				r.createErr = errors.New("db error")
				return r
			},
			fields:  validEventFields(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.setup()
			svc := NewEventService(repo, testLogger(), timeout)
			id, err := svc.CreateEvent(ctx, tt.fields, tt.children)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantVE {
					_, ok := domain.AsValidation(err)
					require.True(t, ok, "expected validation error, got %v", err)
				}
				if tt.assert != nil {
					tt.assert(t, repo, id)
				}
				return
			}
			require.NoError(t, err)
			tt.assert(t, repo, id)
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name     string
		setup    func() (*fakeEventRepo, int64)
		fields   map[string]any
		children *domain.EventChildren
		wantErr  error
		wantVE   bool
		assert   func(t *testing.T, repo *fakeEventRepo, id int64)
	}{
		{
			name: "success keeps current status when omitted",
			setup: func() (*fakeEventRepo, int64) {
				r := newFakeEventRepo()
				id, _ := r.CreateWithChildren(ctx, &domain.EventPayload{Title: "Old", Status: "ongoing"}, nil)
				return r, id
			},
			fields: validEventFields(),
			assert: func(t *testing.T, repo *fakeEventRepo, id int64) {
				e := repo.byID[id]
				assert.Equal(t, "Go Conf", e.Title)
				assert.Equal(t, "ongoing", e.Status)
			},
		},
		{
			name: "nil children passed through untouched",
			setup: func() (*fakeEventRepo, int64) {
				r := newFakeEventRepo()
				id, _ := r.CreateWithChildren(ctx, &domain.EventPayload{Title: "Old", Status: "upcoming"}, nil)
				return r, id
			},
			fields:   validEventFields(),
			children: nil,
			assert: func(t *testing.T, repo *fakeEventRepo, id int64) {
				assert.Nil(t, repo.lastChildren)
			},
		},
		{
			name: "not found",
			setup: func() (*fakeEventRepo, int64) {
				return newFakeEventRepo(), 99
			},
			fields:  validEventFields(),
			wantErr: domain.ErrNotFound,
		},
		{
			name: "validation failure skips write",
			setup: func() (*fakeEventRepo, int64) {
				r := newFakeEventRepo()
				id, _ := r.CreateWithChildren(ctx, &domain.EventPayload{Title: "Old", Status: "upcoming"}, nil)
				return r, id
			},
			fields: map[string]any{"title": "x"},
			wantVE: true,
			assert: func(t *testing.T, repo *fakeEventRepo, _ int64) {
				assert.Zero(t, repo.updateCalls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, id := tt.setup()
			svc := NewEventService(repo, testLogger(), timeout)
			err := svc.UpdateEvent(ctx, id, tt.fields, tt.children)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantVE {
				require.Error(t, err)
				_, ok := domain.AsValidation(err)
				require.True(t, ok)
				if tt.assert != nil {
					tt.assert(t, repo, id)
				}
				return
			}
			require.NoError(t, err)
			if tt.assert != nil {
				tt.assert(t, repo, id)
			}
		})
	}
}

func TestEventService_UpdateEventStatus(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name       string
		status     string
		wantErr    bool
		wantVE     bool
		wantStatus string
	}{
		{name: "lowercases valid status", status: "Ongoing", wantStatus: "ongoing"},
		{name: "rejects unknown status", status: "paused", wantErr: true, wantVE: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			id, _ := repo.CreateWithChildren(ctx, &domain.EventPayload{Title: "E", Status: "upcoming"}, nil)
			svc := NewEventService(repo, testLogger(), timeout)
			err := svc.UpdateEventStatus(ctx, id, tt.status)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantVE {
					_, ok := domain.AsValidation(err)
					require.True(t, ok)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, repo.byID[id].Status)
		})
	}

	t.Run("not found", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), testLogger(), timeout)
		err := svc.UpdateEventStatus(ctx, 42, "ongoing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("success", func(t *testing.T) {
		repo := newFakeEventRepo()
		id, _ := repo.CreateWithChildren(ctx, &domain.EventPayload{Title: "E", Status: "upcoming"}, nil)
		svc := NewEventService(repo, testLogger(), timeout)
		require.NoError(t, svc.DeleteEvent(ctx, id))
		_, err := repo.GetByID(ctx, id)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), testLogger(), timeout)
		err := svc.DeleteEvent(ctx, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_GetEventDetail(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("success with children", func(t *testing.T) {
		repo := newFakeEventRepo()
		id, _ := repo.CreateWithChildren(ctx, &domain.EventPayload{Title: "E", Status: "upcoming"}, &domain.EventChildren{
			Schedules: []domain.EventScheduleItem{{Day: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Activity: "Opening"}},
			Languages: []string{"Go"},
		})
		svc := NewEventService(repo, testLogger(), timeout)
		detail, err := svc.GetEventDetail(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, detail.Event)
		require.Len(t, detail.Schedules, 1)
		assert.Equal(t, "Opening", detail.Schedules[0].Activity)
		assert.Equal(t, []string{"Go"}, detail.Languages)
		require.NotNil(t, detail.Technologies)
		require.NotNil(t, detail.Prizes)
	})

	t.Run("child listing failure degrades to empty", func(t *testing.T) {
		repo := newFakeEventRepo()
		id, _ := repo.CreateWithChildren(ctx, &domain.EventPayload{Title: "E", Status: "upcoming"}, &domain.EventChildren{
			Languages: []string{"Go"},
		})
		repo.listKidsErr = errors.New("db error")
		svc := NewEventService(repo, testLogger(), timeout)
		detail, err := svc.GetEventDetail(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, detail.Event)
		require.NotNil(t, detail.Languages)
		require.Len(t, detail.Languages, 0)
		require.Len(t, detail.Schedules, 0)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), testLogger(), timeout)
		_, err := svc.GetEventDetail(ctx, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("empty never nil", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), testLogger(), timeout)
		events, total, err := svc.ListEvents(ctx, domain.PaginationParams{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.NotNil(t, events)
		assert.Len(t, events, 0)
		assert.Equal(t, 0, total)
	})
}
