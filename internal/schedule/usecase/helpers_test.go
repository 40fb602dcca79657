package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
	"guild-planning/internal/schedule/cache"
	"guild-planning/internal/schedule/repository"
	"guild-planning/internal/schedule/usecase"
	"guild-planning/pkg/weekcal"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is an in-memory repository.Repository with injectable failures.
type fakeRepo struct {
	mu     sync.Mutex
	rows   []model.Row
	nextID int64

	initErr   error
	loadErr   error
	appendErr error
	deleteErr error
	countErr  error

	appendCalls int
	deleteCalls int
}

func (r *fakeRepo) Initialize(ctx context.Context) error {
	return r.initErr
}

func (r *fakeRepo) LoadAll(ctx context.Context) ([]model.Row, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return append([]model.Row(nil), r.rows...), nil
}

func (r *fakeRepo) Append(ctx context.Context, opt repository.AppendOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendCalls++
	if r.appendErr != nil {
		return r.appendErr
	}
	r.nextID++
	r.rows = append(r.rows, model.Row{ID: r.nextID, Community: opt.Community, Date: opt.Date, Text: opt.Text})
	return nil
}

func (r *fakeRepo) DeleteAll(ctx context.Context, community int64) (int64, error) {
	return r.deleteWhere(func(row model.Row) bool { return row.Community == community })
}

func (r *fakeRepo) DeleteDate(ctx context.Context, opt repository.DeleteDateOptions) (int64, error) {
	return r.deleteWhere(func(row model.Row) bool {
		return row.Community == opt.Community && row.Date == opt.Date
	})
}

func (r *fakeRepo) deleteWhere(match func(model.Row) bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	kept := r.rows[:0]
	var removed int64
	for _, row := range r.rows {
		if match(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return removed, nil
}

func (r *fakeRepo) CountAll(ctx context.Context, community int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	n := 0
	for _, row := range r.rows {
		if row.Community == community {
			n++
		}
	}
	return n, nil
}

// texts returns what the store holds for (community, date), in insertion order.
func (r *fakeRepo) texts(community int64, date string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, row := range r.rows {
		if row.Community == community && row.Date == date {
			out = append(out, row.Text)
		}
	}
	return out
}

func (r *fakeRepo) setAppendErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendErr = err
}

func (r *fakeRepo) setDeleteErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteErr = err
}

// mockMirror records mirrored changes.
type mockMirror struct {
	mu      sync.Mutex
	adds    []schedule.MirrorAddInput
	clears  []schedule.MirrorClearInput
	failErr error
}

func (m *mockMirror) MirrorAdd(ctx context.Context, input schedule.MirrorAddInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adds = append(m.adds, input)
	return m.failErr
}

func (m *mockMirror) MirrorClear(ctx context.Context, input schedule.MirrorClearInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears = append(m.clears, input)
	return m.failErr
}

// wednesday is 2024-05-01; the week runs from 2024-04-29 to 2024-05-05.
var wednesday = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newCalendar(t *testing.T) *weekcal.Calendar {
	t.Helper()
	cal, err := weekcal.NewCalendar("UTC")
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	cal.SetClock(func() time.Time { return wednesday })
	return cal
}

type testEnv struct {
	uc     schedule.UseCase
	repo   *fakeRepo
	cache  *cache.EventCache
	cal    *weekcal.Calendar
	mirror *mockMirror
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:   &fakeRepo{},
		cache:  cache.New(),
		cal:    newCalendar(t),
		mirror: &mockMirror{},
	}
	env.uc = usecase.New(&mockLogger{}, env.repo, env.cache, env.cal, env.mirror)
	return env
}

func scope(community int64) model.Scope {
	return model.Scope{Community: community, UserID: 7, Username: "tester"}
}

// assertConsistent checks that the cache matches the store for every date of the week.
func assertConsistent(t *testing.T, env *testEnv, communities ...int64) {
	t.Helper()
	for _, c := range communities {
		for _, date := range env.cal.Week().Dates() {
			stored := env.repo.texts(c, date)
			cached := env.cache.Get(c, date)
			if len(stored) != len(cached) {
				t.Fatalf("community %d %s: store=%v cache=%v", c, date, stored, cached)
			}
			for i := range stored {
				if stored[i] != cached[i] {
					t.Fatalf("community %d %s: store=%v cache=%v", c, date, stored, cached)
				}
			}
		}
	}
}
