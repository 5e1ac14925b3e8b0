package services

import (
	"math"
	"testing"
	"time"

	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Spring Half Marathon", false},
		{"valid name with special chars", "10K-Run_2030!", false},
		{"leading whitespace", " Run", true},
		{"trailing whitespace", "Run ", true},
		{"only whitespace", "   ", true},
		{"tab character (control)", "Run\tClub", true},
		{"newline character (control)", "Run\nClub", true},
		{"DEL character", "Run\x7F", true},
		{"consecutive spaces", "Run  Club", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRunningEventForCreation(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(30 * 24 * time.Hour).UnixMilli()

	makeEvent := func(id int64, name string, dt int64, location string) *models.RunningEvent {
		return &models.RunningEvent{ID: id, Name: name, DateTime: dt, Location: location}
	}

	t.Run("nil event returns error", func(t *testing.T) {
		if err := ValidateRunningEventForCreation(nil, now); err == nil {
			t.Fatal("expected error for nil event")
		}
	})

	t.Run("valid event returns nil", func(t *testing.T) {
		if err := ValidateRunningEventForCreation(makeEvent(0, "Test Event", future, "Test Location"), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("persisted event returns error", func(t *testing.T) {
		if err := ValidateRunningEventForCreation(makeEvent(7, "Test Event", future, "Test Location"), now); err == nil {
			t.Fatal("expected error for event with ID")
		}
	})

	t.Run("past date returns error", func(t *testing.T) {
		past := now.Add(-time.Hour).UnixMilli()
		if err := ValidateRunningEventForCreation(makeEvent(0, "Test Event", past, "Test Location"), now); err == nil {
			t.Fatal("expected error for past date")
		}
	})

	t.Run("invalid location propagates error", func(t *testing.T) {
		if err := ValidateRunningEventForCreation(makeEvent(0, "Test Event", future, " Park"), now); err == nil {
			t.Fatal("expected error for invalid location")
		}
	})
}

func TestValidateQuery(t *testing.T) {
	from, to := int64(2000), int64(1000)

	tests := []struct {
		name    string
		query   *models.RunningEventQuery
		wantErr bool
	}{
		{"nil query", nil, true},
		{"valid", &models.RunningEventQuery{PageSize: 10, SortDirection: models.SortAsc}, false},
		{"negative page", &models.RunningEventQuery{Page: -1, PageSize: 10, SortDirection: models.SortAsc}, true},
		{"zero page size", &models.RunningEventQuery{PageSize: 0, SortDirection: models.SortAsc}, true},
		{"page size over max", &models.RunningEventQuery{PageSize: MaxPageSize + 1, SortDirection: models.SortAsc}, true},
		{"last addressable page", &models.RunningEventQuery{Page: math.MaxInt32 / 10, PageSize: 10, SortDirection: models.SortAsc}, false},
		{"offset past int32", &models.RunningEventQuery{Page: 429496730, PageSize: 10, SortDirection: models.SortAsc}, true},
		{"reversed range", &models.RunningEventQuery{FromDate: &from, ToDate: &to, PageSize: 10, SortDirection: models.SortDesc}, true},
		{"unknown direction", &models.RunningEventQuery{PageSize: 10, SortDirection: "UP"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateQuery() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
