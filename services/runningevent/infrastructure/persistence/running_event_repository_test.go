package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	rdomain "github.com/ghuser/runningevents/services/runningevent/domain"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
	"github.com/ghuser/runningevents/services/runningevent/domain/repositories"
)

var _ repositories.RunningEventRepository = (*RunningEventRepository)(nil)

func futureMillis() int64 {
	return time.Now().Add(30 * 24 * time.Hour).UnixMilli()
}

func TestSave(t *testing.T) {
	repo, store, mapper := newTestRepository()
	dt := futureMillis()
	store.saveResult = &RunningEventEntity{ID: 1, Name: "Test Event", DateTime: dt, Location: "Test Location"}

	event := &models.RunningEvent{Name: "Test Event", DateTime: dt, Location: "Test Location"}
	got, err := repo.Save(context.Background(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != 1 {
		t.Fatalf("expected saved event with ID 1, got %+v", got)
	}
	if len(store.saveCalls) != 1 {
		t.Fatalf("expected 1 store save, got %d", len(store.saveCalls))
	}
	if saved := store.saveCalls[0]; saved.ID != 0 || saved.Name != "Test Event" || saved.DateTime != dt {
		t.Fatalf("unexpected entity passed to store: %+v", saved)
	}
	if mapper.toEntityCalls != 1 || mapper.toDomainCalls != 1 {
		t.Fatalf("expected one mapping each way, got toEntity=%d toDomain=%d", mapper.toEntityCalls, mapper.toDomainCalls)
	}
}

func TestSave_StoreErrorPropagates(t *testing.T) {
	repo, store, _ := newTestRepository()
	storeErr := errors.New("connection refused")
	store.err = storeErr

	_, err := repo.Save(context.Background(), &models.RunningEvent{Name: "Run"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestFindByID_Found(t *testing.T) {
	repo, store, mapper := newTestRepository()
	store.findResult = &RunningEventEntity{ID: 1, Name: "Test Event", DateTime: futureMillis(), Location: "Test Location"}

	got, found, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected event to be found")
	}
	if got.ID != 1 || got.Name != "Test Event" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if len(store.findCalls) != 1 || store.findCalls[0] != 1 {
		t.Fatalf("expected single lookup of id 1, got %v", store.findCalls)
	}
	if mapper.toDomainCalls != 1 {
		t.Fatalf("expected 1 toDomain call, got %d", mapper.toDomainCalls)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, store, mapper := newTestRepository()

	got, found, err := repo.FindByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found || got != nil {
		t.Fatalf("expected empty result, got %+v (found=%v)", got, found)
	}
	if len(store.findCalls) != 1 || store.findCalls[0] != 99 {
		t.Fatalf("expected single lookup of id 99, got %v", store.findCalls)
	}
	if mapper.toDomainCalls != 0 {
		t.Fatalf("mapper must not be invoked on a miss, got %d calls", mapper.toDomainCalls)
	}
}

func TestInvalidArguments_NeverReachStore(t *testing.T) {
	tests := []struct {
		name string
		call func(*RunningEventRepository) error
	}{
		{"Save nil", func(r *RunningEventRepository) error {
			_, err := r.Save(context.Background(), nil)
			return err
		}},
		{"FindByID zero", func(r *RunningEventRepository) error {
			_, _, err := r.FindByID(context.Background(), 0)
			return err
		}},
		{"FindAll nil", func(r *RunningEventRepository) error {
			_, err := r.FindAll(context.Background(), nil)
			return err
		}},
		{"DeleteByID zero", func(r *RunningEventRepository) error {
			_, err := r.DeleteByID(context.Background(), 0)
			return err
		}},
		{"ExistsByID zero", func(r *RunningEventRepository) error {
			_, err := r.ExistsByID(context.Background(), 0)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store, mapper := newTestRepository()
			err := tt.call(repo)
			if !errors.Is(err, rdomain.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if n := store.calls(); n != 0 {
				t.Fatalf("expected no store calls, got %d", n)
			}
			if mapper.toEntityCalls+mapper.toDomainCalls != 0 {
				t.Fatal("expected no mapper calls")
			}
		})
	}
}

func TestFindAll_AscendingWithoutDateFilter(t *testing.T) {
	repo, store, mapper := newTestRepository()
	dt := futureMillis()
	store.page = Page[*RunningEventEntity]{
		Items: []*RunningEventEntity{
			{ID: 1, Name: "Event 1", DateTime: dt, Location: "Location 1"},
			{ID: 2, Name: "Event 2", DateTime: dt + 1000, Location: "Location 2"},
		},
		Total: 2,
	}

	query := &models.RunningEventQuery{Page: 0, PageSize: 10, SortDirection: models.SortAsc}
	result, err := repo.FindAll(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != 2 || result.TotalItems != 2 || result.Page != 0 || result.PageSize != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Items[0].ID != 1 || result.Items[1].ID != 2 {
		t.Fatalf("expected order to be preserved, got %d, %d", result.Items[0].ID, result.Items[1].ID)
	}
	if mapper.toDomainCalls != 2 {
		t.Fatalf("expected 2 toDomain calls, got %d", mapper.toDomainCalls)
	}
	if len(store.betweenCalls) != 0 {
		t.Fatal("date-range listing must not be used without both bounds")
	}
	if len(store.findAllCalls) != 1 {
		t.Fatalf("expected 1 FindAll call, got %d", len(store.findAllCalls))
	}

	want := PageRequest{Page: 0, Size: 10, Sort: Sort{Field: "dateTime", Direction: models.SortAsc}}
	if got := store.findAllCalls[0]; got != want {
		t.Fatalf("page request = %+v, want %+v", got, want)
	}
}

func TestFindAll_DescendingBySortField(t *testing.T) {
	repo, store, _ := newTestRepository()

	query := &models.RunningEventQuery{Page: 2, PageSize: 5, SortBy: "name", SortDirection: models.SortDesc}
	if _, err := repo.FindAll(context.Background(), query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := PageRequest{Page: 2, Size: 5, Sort: Sort{Field: "name", Direction: models.SortDesc}}
	if got := store.findAllCalls[0]; got != want {
		t.Fatalf("page request = %+v, want %+v", got, want)
	}
}

func TestFindAll_DescendingDefaultsToDateTime(t *testing.T) {
	repo, store, _ := newTestRepository()

	query := &models.RunningEventQuery{PageSize: 10, SortDirection: models.SortDesc}
	if _, err := repo.FindAll(context.Background(), query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.findAllCalls[0].Sort; got.Field != "dateTime" || got.Direction != models.SortDesc {
		t.Fatalf("unexpected sort %+v", got)
	}
}

func TestFindAll_DateRangeRoutesToBetween(t *testing.T) {
	repo, store, _ := newTestRepository()
	from := time.Now().UnixMilli()
	to := time.Now().Add(60 * 24 * time.Hour).UnixMilli()
	store.page = Page[*RunningEventEntity]{
		Items: []*RunningEventEntity{{ID: 5, Name: "Event", DateTime: from + 1}},
		Total: 1,
	}

	query := &models.RunningEventQuery{FromDate: &from, ToDate: &to, PageSize: 10, SortDirection: models.SortAsc}
	result, err := repo.FindAll(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.findAllCalls) != 0 {
		t.Fatal("unconditional listing must not be used when both bounds are set")
	}
	if len(store.betweenCalls) != 1 {
		t.Fatalf("expected 1 date-range call, got %d", len(store.betweenCalls))
	}
	if store.betweenBounds[0] != [2]int64{from, to} {
		t.Fatalf("bounds = %v, want [%d %d]", store.betweenBounds[0], from, to)
	}
	if result.TotalItems != 1 || len(result.Items) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestFindAll_SingleBoundUsesUnconditionalListing(t *testing.T) {
	repo, store, _ := newTestRepository()
	from := time.Now().UnixMilli()

	query := &models.RunningEventQuery{FromDate: &from, PageSize: 10, SortDirection: models.SortAsc}
	if _, err := repo.FindAll(context.Background(), query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.findAllCalls) != 1 || len(store.betweenCalls) != 0 {
		t.Fatalf("expected unconditional listing, got findAll=%d between=%d", len(store.findAllCalls), len(store.betweenCalls))
	}
}

func TestDeleteByID_Exists(t *testing.T) {
	repo, store, _ := newTestRepository()
	store.exists = true

	deleted, err := repo.DeleteByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected true")
	}
	if len(store.existsCalls) != 1 {
		t.Fatalf("expected 1 exists check, got %d", len(store.existsCalls))
	}
	if len(store.deleteCalls) != 1 || store.deleteCalls[0] != 1 {
		t.Fatalf("expected exactly one delete of id 1, got %v", store.deleteCalls)
	}
}

func TestDeleteByID_Missing(t *testing.T) {
	repo, store, _ := newTestRepository()
	store.exists = false

	deleted, err := repo.DeleteByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatal("expected false")
	}
	if len(store.deleteCalls) != 0 {
		t.Fatalf("delete must not be invoked, got %v", store.deleteCalls)
	}
}

func TestExistsByID(t *testing.T) {
	for _, want := range []bool{true, false} {
		repo, store, _ := newTestRepository()
		store.exists = want

		got, err := repo.ExistsByID(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("ExistsByID = %v, want %v", got, want)
		}
		if len(store.existsCalls) != 1 || store.existsCalls[0] != 3 {
			t.Fatalf("expected single exists check for id 3, got %v", store.existsCalls)
		}
	}
}
