package workflows

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.temporal.io/sdk/testsuite"

	"github.com/ghuser/runningevents/pkg/logger"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// dateRangeRepo is an in-memory repository that honours the date-range listing.
type dateRangeRepo struct {
	events    map[int64]*models.RunningEvent
	deleteErr error
	queries   []models.RunningEventQuery
}

func newDateRangeRepo(events ...*models.RunningEvent) *dateRangeRepo {
	r := &dateRangeRepo{events: map[int64]*models.RunningEvent{}}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *dateRangeRepo) Save(_ context.Context, e *models.RunningEvent) (*models.RunningEvent, error) {
	r.events[e.ID] = e
	return e, nil
}

func (r *dateRangeRepo) FindByID(_ context.Context, id int64) (*models.RunningEvent, bool, error) {
	e, ok := r.events[id]
	return e, ok, nil
}

func (r *dateRangeRepo) FindAll(_ context.Context, q *models.RunningEventQuery) (*models.PaginatedResult[*models.RunningEvent], error) {
	r.queries = append(r.queries, *q)
	var matched []*models.RunningEvent
	for _, e := range r.events {
		if q.HasDateRange() && (e.DateTime < *q.FromDate || e.DateTime > *q.ToDate) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].DateTime < matched[j].DateTime })
	end := min(q.PageSize, len(matched))
	return &models.PaginatedResult[*models.RunningEvent]{
		Items: matched[:end], TotalItems: int64(len(matched)), Page: q.Page, PageSize: q.PageSize,
	}, nil
}

func (r *dateRangeRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	if _, ok := r.events[id]; !ok {
		return false, nil
	}
	delete(r.events, id)
	return true, nil
}

func (r *dateRangeRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.events[id]
	return ok, nil
}

var purgeStart = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func eventsAround(start time.Time, past, future int) []*models.RunningEvent {
	var out []*models.RunningEvent
	id := int64(1)
	for i := 0; i < past; i++ {
		out = append(out, &models.RunningEvent{ID: id, Name: "past", DateTime: start.Add(-time.Duration(i+1) * time.Hour).UnixMilli(), Location: "X"})
		id++
	}
	for i := 0; i < future; i++ {
		out = append(out, &models.RunningEvent{ID: id, Name: "future", DateTime: start.Add(time.Duration(i+1) * time.Hour).UnixMilli(), Location: "X"})
		id++
	}
	return out
}

func TestListPastRunningEventIDs_UsesDateRange(t *testing.T) {
	repo := newDateRangeRepo(eventsAround(purgeStart, 3, 2)...)
	acts := NewPurgeActivities(repo, nil, logger.Discard())

	ids, err := acts.ListPastRunningEventIDs(context.Background(), purgeStart.UnixMilli(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 past events, got %v", ids)
	}

	q := repo.queries[0]
	if !q.HasDateRange() || *q.ToDate != purgeStart.UnixMilli()-1 {
		t.Fatalf("expected date range ending before cutoff, got %+v", q)
	}
	if q.SortBy != models.DefaultSortField || q.SortDirection != models.SortAsc {
		t.Fatalf("expected oldest-first ordering, got %+v", q)
	}
}

func TestDeleteRunningEvents_SkipsMissing(t *testing.T) {
	repo := newDateRangeRepo(eventsAround(purgeStart, 2, 0)...)
	acts := NewPurgeActivities(repo, nil, logger.Discard())

	n, err := acts.DeleteRunningEvents(context.Background(), []int64{1, 2, 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deletions, got %d", n)
	}
}

func TestDeleteRunningEvents_PropagatesError(t *testing.T) {
	repo := newDateRangeRepo(eventsAround(purgeStart, 1, 0)...)
	repo.deleteErr = errors.New("connection reset")
	acts := NewPurgeActivities(repo, nil, logger.Discard())

	if _, err := acts.DeleteRunningEvents(context.Background(), []int64{1}); err == nil {
		t.Fatal("expected error")
	}
}

func runPurge(t *testing.T, repo *dateRangeRepo, in PurgeInput) PurgeResult {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.SetStartTime(purgeStart)
	env.RegisterActivity(NewPurgeActivities(repo, nil, logger.Discard()))

	env.ExecuteWorkflow(PurgePastRunningEventsWorkflow, in)

	if !env.IsWorkflowCompleted() {
		t.Fatal("workflow did not complete")
	}
	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow error: %v", err)
	}
	var res PurgeResult
	if err := env.GetWorkflowResult(&res); err != nil {
		t.Fatalf("workflow result: %v", err)
	}
	return res
}

func TestPurgeWorkflow(t *testing.T) {
	tests := []struct {
		name        string
		past        int
		future      int
		in          PurgeInput
		wantDeleted int
		wantBatches int
	}{
		{"nothing to purge", 0, 3, PurgeInput{BatchSize: 2}, 0, 0},
		{"single partial batch", 1, 2, PurgeInput{BatchSize: 2}, 1, 1},
		{"several batches", 5, 1, PurgeInput{BatchSize: 2}, 5, 3},
		{"exact multiple of batch size", 4, 0, PurgeInput{BatchSize: 2}, 4, 2},
		{"retention keeps recent past", 5, 0, PurgeInput{BatchSize: 10, Retention: 150 * time.Minute}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newDateRangeRepo(eventsAround(purgeStart, tt.past, tt.future)...)
			res := runPurge(t, repo, tt.in)

			if res.Deleted != tt.wantDeleted || res.Batches != tt.wantBatches {
				t.Fatalf("expected deleted=%d batches=%d, got %+v", tt.wantDeleted, tt.wantBatches, res)
			}
			if res.CutoffMillis != purgeStart.Add(-tt.in.Retention).UnixMilli() {
				t.Fatalf("unexpected cutoff %d", res.CutoffMillis)
			}
			if want := tt.past + tt.future - tt.wantDeleted; len(repo.events) != want {
				t.Fatalf("expected %d events left, got %d", want, len(repo.events))
			}
		})
	}
}

func TestPurgeSchedule(t *testing.T) {
	s := PurgeSchedule(24*time.Hour, 720*time.Hour)
	if s.ID != PurgeScheduleID || s.Every != 24*time.Hour {
		t.Fatalf("unexpected schedule: %+v", s)
	}
	in, ok := s.Args[0].(PurgeInput)
	if !ok || in.Retention != 720*time.Hour || in.BatchSize != defaultPurgeBatchSize {
		t.Fatalf("unexpected schedule args: %+v", s.Args)
	}
}
