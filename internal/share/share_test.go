package share

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mohanvarma22/bcommune/internal/domain"
	"github.com/mohanvarma22/bcommune/internal/store"
)

func testDirectory(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(store.Snapshot{
		CurrentUserID: "user-1",
		Users: []domain.User{
			{ID: "user-1", Name: "Maya Chen", Title: "Founder"},
			{ID: "user-2", Name: "Dev Patel", Title: "Backend Engineer"},
		},
		Companies: []domain.Company{
			{ID: "company-1", Name: "Acme Robotics"},
		},
		Jobs: []domain.Job{
			{
				ID:        "job-1",
				Title:     "Backend Engineer",
				CompanyID: "company-1",
				Location:  "Remote",
				Status:    domain.JobOpen,
				PosterID:  "user-1",
				Applicants: []domain.ApplicantDetail{
					{UserID: "user-2", Status: domain.StatusShortlisted, Rating: 4},
				},
			},
		},
		Dashboards: []domain.SharedDashboard{
			{
				ID:    "dash-1",
				JobID: "job-1",
				// user-404 never applied; the view must drop the row.
				ApplicantUserIDs: []string{"user-2", "user-404"},
			},
		},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestGetDashboardView(t *testing.T) {
	t.Parallel()

	mux := newMux(testDirectory(t))
	req := httptest.NewRequest(http.MethodGet, "/dashboards/dash-1", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q, want application/json", got)
	}

	var view View
	if err := json.NewDecoder(rr.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.ID != "dash-1" {
		t.Fatalf("view id = %q, want dash-1", view.ID)
	}
	if view.Job.Title != "Backend Engineer" || view.Job.Company != "Acme Robotics" {
		t.Fatalf("job view = %+v", view.Job)
	}
	if len(view.Applicants) != 1 {
		t.Fatalf("applicants = %+v, want only the user who applied", view.Applicants)
	}
	applicant := view.Applicants[0]
	if applicant.Name != "Dev Patel" || applicant.Status != "Shortlisted" || applicant.Rating != 4 {
		t.Fatalf("applicant = %+v", applicant)
	}
}

func TestGetDashboardUnknownID(t *testing.T) {
	t.Parallel()

	mux := newMux(testDirectory(t))
	req := httptest.NewRequest(http.MethodGet, "/dashboards/dash-404", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, err := New("127.0.0.1:0", testDirectory(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ctx)
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/dashboards/dash-1")
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
