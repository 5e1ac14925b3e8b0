package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/runningevents/pkg/httpx"
	pkgvalidator "github.com/ghuser/runningevents/pkg/validator"
)

type createReq struct {
	Name     string `json:"name"     validate:"required,min=1,max=10,trimmed"`
	DateTime int64  `json:"dateTime" validate:"required,gt=0"`
	Location string `json:"location" validate:"required,max=255"`
}

type listParams struct {
	PageSize      int    `json:"pageSize"      validate:"gte=1,lte=100"`
	SortBy        string `json:"sortBy"        validate:"omitempty,oneof=id name dateTime location"`
	SortDirection string `json:"sortDirection" validate:"sortdir"`
}

func TestValidate_valid(t *testing.T) {
	s := createReq{Name: "10K", DateTime: 1, Location: "Berlin"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
		field string
		want  string
	}{
		{"required", &createReq{}, "name", "This field is required"},
		{"max", &createReq{Name: "12345678901", DateTime: 1, Location: "x"}, "name", "Maximum length is 10"},
		{"trimmed", &createReq{Name: " 10K", DateTime: 1, Location: "x"}, "name", "Must not start or end with whitespace"},
		{"gt", &createReq{Name: "10K", DateTime: -5, Location: "x"}, "dateTime", "Must be greater than 0"},
		{"lte", &listParams{PageSize: 101}, "pageSize", "Must be less than or equal to 100"},
		{"oneof", &listParams{PageSize: 1, SortBy: "distance"}, "sortBy", "Must be one of: id name dateTime location"},
		{"sortdir", &listParams{PageSize: 1, SortDirection: "sideways"}, "sortDirection", "Must be ASC or DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(tt.value))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestValidate_sortdirCaseInsensitive(t *testing.T) {
	for _, dir := range []string{"", "asc", "DESC", "Desc"} {
		if err := pkgvalidator.Validate(&listParams{PageSize: 10, SortDirection: dir}); err != nil {
			t.Errorf("%q: unexpected error %v", dir, err)
		}
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"10K","dateTime":1893456000000,"location":"Berlin"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[createReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "10K" || req.DateTime != 1893456000000 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[createReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"10K"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[createReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing dateTime")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "dateTime") {
		t.Errorf("expected dateTime field error in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", 200) + `"}`
	var code int
	h := httpx.RequestBodyLimit(64)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = pkgvalidator.ValidateRequest[createReq](w, r)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	code = w.Code

	if code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", code)
	}
}

func TestValidateParams_writes422(t *testing.T) {
	w := httptest.NewRecorder()
	if pkgvalidator.ValidateParams(w, &listParams{PageSize: 0}) {
		t.Fatal("expected ok=false for pageSize 0")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}
