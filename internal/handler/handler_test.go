package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/dto"
	"github.com/personnel-roster/internal/handler"
	"github.com/personnel-roster/internal/roster"
	"github.com/personnel-roster/internal/seed"
	"github.com/personnel-roster/internal/service"
	"github.com/personnel-roster/internal/summary"
)

type testServer struct {
	server *httptest.Server
	store  *roster.Store
}

func setupTestServer(_ *testing.T) *testServer {
	return setupTestServerWith(seed.Default())
}

func setupTestServerWith(emps []domain.Employee) *testServer {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	store := roster.NewStore(emps)
	rosterService := service.NewRosterService(store, summary.DefaultTopN, logger)
	rosterHandler := handler.NewRosterHandler(rosterService, logger)
	router := handler.NewRouter(rosterHandler, logger)

	return &testServer{
		server: httptest.NewServer(router.Setup()),
		store:  store,
	}
}

func (ts *testServer) Close() {
	ts.server.Close()
}

func deleteRequest(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}
	return http.DefaultClient.Do(req)
}

func searchURL(base, field, op, value string) string {
	q := url.Values{}
	q.Set("field", field)
	q.Set("operator", op)
	q.Set("value", value)
	return base + "/employees/search?" + q.Encode()
}

func mustGet(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("expected %d, got %d", wantStatus, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
	}
}

func employeeNames(emps []dto.EmployeeResponse) []string {
	out := make([]string, len(emps))
	for i, e := range emps {
		out[i] = e.Name
	}
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustGet(t, ts.server.URL+"/health", http.StatusOK, nil)
}

func TestListEmployees(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.ListResponse
	mustGet(t, ts.server.URL+"/employees", http.StatusOK, &result)

	if result.Count != 9 || len(result.Employees) != 9 {
		t.Fatalf("expected 9 employees, got %d", result.Count)
	}
	if result.Employees[0].Manager != nil {
		t.Errorf("expected root manager to be null, got %v", *result.Employees[0].Manager)
	}
	if result.Employees[8].Name != "Arun" {
		t.Errorf("expected last employee 'Arun', got '%s'", result.Employees[8].Name)
	}
}

func TestGetEmployee_Success(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.EmployeeResponse
	mustGet(t, ts.server.URL+"/employees/e003", http.StatusOK, &result)

	if result.Name != "Anita" {
		t.Errorf("expected name 'Anita', got '%s'", result.Name)
	}
}

func TestGetEmployee_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.ErrorResponse
	mustGet(t, ts.server.URL+"/employees/E404", http.StatusNotFound, &result)

	if result.Error != "employee not found" {
		t.Errorf("unexpected error '%s'", result.Error)
	}
}

func TestGetEmployeeByName(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.EmployeeResponse
	mustGet(t, ts.server.URL+"/employees/by-name/priya", http.StatusOK, &result)
	if result.ID != "E005" {
		t.Errorf("expected id 'E005', got '%s'", result.ID)
	}

	mustGet(t, ts.server.URL+"/employees/by-name/nobody", http.StatusNotFound, nil)
}

func TestSearch_DepartmentEqualsIT(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.ListResponse
	mustGet(t, searchURL(ts.server.URL, "department", "equals", "IT"), http.StatusOK, &result)

	want := []string{"Suresh", "Karthi", "Priya", "Deepa", "Maya"}
	if got := employeeNames(result.Employees); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSearch_NoMatchIsEmptySuccess(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.ListResponse
	mustGet(t, searchURL(ts.server.URL, "age", ">", "100"), http.StatusOK, &result)

	if result.Count != 0 || result.Employees == nil {
		t.Errorf("expected empty non-null list, got %+v", result)
	}
}

func TestSearch_Errors(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	tests := []struct {
		name             string
		field, op, value string
		wantError        string
	}{
		{"invalid field", "email", "=", "x", "invalid field"},
		{"invalid operator", "salary", "contains", "1", "invalid operator"},
		{"invalid value", "age", ">=", "abc", "invalid value"},
		{"missing field", "", "=", "x", "validation error"},
		{"missing operator", "name", "", "x", "validation error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result dto.ErrorResponse
			mustGet(t, searchURL(ts.server.URL, tt.field, tt.op, tt.value), http.StatusBadRequest, &result)
			if result.Error != tt.wantError {
				t.Errorf("expected error '%s', got '%s'", tt.wantError, result.Error)
			}
		})
	}
}

func TestRemoveEmployee_Success(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := deleteRequest(ts.server.URL + "/employees/E002")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var result dto.RemoveResponse
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Removed.Name != "Suresh" || result.Reassigned != 3 {
		t.Errorf("unexpected remove result %+v", result)
	}

	var chain dto.ChainResponse
	mustGet(t, ts.server.URL+"/hierarchy/chain/Karthi", http.StatusOK, &chain)
	if want := []string{"Karthi", "Ramesh"}; !reflect.DeepEqual(chain.Chain, want) {
		t.Errorf("expected chain %v, got %v", want, chain.Chain)
	}

	if ts.store.Len() != 8 {
		t.Errorf("expected 8 employees, got %d", ts.store.Len())
	}
}

func TestRemoveEmployee_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	before := ts.store.All()

	resp, err := deleteRequest(ts.server.URL + "/employees/E404")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
	if !reflect.DeepEqual(before, ts.store.All()) {
		t.Error("store changed after failed removal")
	}
}

func TestHierarchyChain(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var chain dto.ChainResponse
	mustGet(t, ts.server.URL+"/hierarchy/chain/Karthi", http.StatusOK, &chain)
	if want := []string{"Karthi", "Suresh", "Ramesh"}; !reflect.DeepEqual(chain.Chain, want) {
		t.Errorf("expected chain %v, got %v", want, chain.Chain)
	}

	mustGet(t, ts.server.URL+"/hierarchy/chain/Nobody", http.StatusNotFound, nil)
}

func TestHierarchyChain_Cycle(t *testing.T) {
	ts := setupTestServerWith([]domain.Employee{
		{ID: "1", Name: "A", Manager: domain.StringPtr("B")},
		{ID: "2", Name: "B", Manager: domain.StringPtr("A")},
	})
	defer ts.Close()

	mustGet(t, ts.server.URL+"/hierarchy/chain/A", http.StatusConflict, nil)
}

func TestHierarchyReports(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var groups []dto.ReportGroupResponse
	mustGet(t, ts.server.URL+"/hierarchy/reports", http.StatusOK, &groups)

	if len(groups) != 5 {
		t.Fatalf("expected 5 groups, got %d", len(groups))
	}
	if groups[3].Manager != "Ramesh" || !reflect.DeepEqual(groups[3].Reports, []string{"Suresh", "Anita", "Arun"}) {
		t.Errorf("unexpected group %+v", groups[3])
	}
}

func TestSummary(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	var result dto.SummaryResponse
	mustGet(t, ts.server.URL+"/summary", http.StatusOK, &result)

	if result.Total != 9 {
		t.Errorf("expected total 9, got %d", result.Total)
	}
	if result.MaxSalary == nil || *result.MaxSalary != 300000 {
		t.Errorf("expected max salary 300000, got %v", result.MaxSalary)
	}
	if result.MinSalary == nil || *result.MinSalary != 20000 {
		t.Errorf("expected min salary 20000, got %v", result.MinSalary)
	}
	if want := []string{"Ramesh", "Suresh", "Anita"}; !reflect.DeepEqual(employeeNames(result.TopEarners), want) {
		t.Errorf("expected top earners %v, got %v", want, employeeNames(result.TopEarners))
	}
}

func TestSummary_EmptyStore(t *testing.T) {
	ts := setupTestServerWith(nil)
	defer ts.Close()

	var raw map[string]any
	mustGet(t, ts.server.URL+"/summary", http.StatusOK, &raw)

	if raw["average_salary"] != 0.0 {
		t.Errorf("expected average 0, got %v", raw["average_salary"])
	}
	if _, ok := raw["max_salary"]; ok {
		t.Error("max_salary must be omitted for an empty store")
	}
	if _, ok := raw["min_salary"]; ok {
		t.Error("min_salary must be omitted for an empty store")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/employees"},
		{http.MethodPut, "/employees/E001"},
		{http.MethodDelete, "/summary"},
		{http.MethodPost, "/hierarchy/reports"},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, ts.server.URL+tt.path, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, http.StatusMethodNotAllowed, resp.StatusCode)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustGet(t, ts.server.URL+"/hierarchy/unknown", http.StatusNotFound, nil)
	mustGet(t, ts.server.URL+"/employees/a/b/c", http.StatusNotFound, nil)
}

func TestFullWorkflow(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	// Удаляем корень: его подчинённые становятся корнями
	resp, err := deleteRequest(ts.server.URL + "/employees/E001")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	var roots dto.ListResponse
	mustGet(t, searchURL(ts.server.URL, "manager", "=", ""), http.StatusOK, &roots)
	if want := []string{"Suresh", "Anita", "Arun"}; !reflect.DeepEqual(employeeNames(roots.Employees), want) {
		t.Errorf("expected roots %v, got %v", want, employeeNames(roots.Employees))
	}

	var chain dto.ChainResponse
	mustGet(t, ts.server.URL+"/hierarchy/chain/Maya", http.StatusOK, &chain)
	if want := []string{"Maya", "Karthi", "Suresh"}; !reflect.DeepEqual(chain.Chain, want) {
		t.Errorf("expected chain %v, got %v", want, chain.Chain)
	}

	var sum dto.SummaryResponse
	mustGet(t, ts.server.URL+"/summary", http.StatusOK, &sum)
	if sum.Total != 8 {
		t.Errorf("expected total 8, got %d", sum.Total)
	}
	if want := []string{"Suresh", "Anita", "Arun"}; !reflect.DeepEqual(employeeNames(sum.TopEarners), want) {
		t.Errorf("expected top earners %v, got %v", want, employeeNames(sum.TopEarners))
	}
}

func BenchmarkSearch(b *testing.B) {
	ts := setupTestServerWith(seed.Default())
	defer ts.Close()

	u := searchURL(ts.server.URL, "salary", ">=", "70000")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp, err := http.Get(u)
		if err != nil {
			b.Fatal(err)
		}
		resp.Body.Close()
	}
}
