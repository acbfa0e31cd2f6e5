// Package share serves shared-dashboard links. A dashboard id is the whole
// capability: anyone holding the id can fetch the read-only view, and an id
// that is not in memory resolves to nothing.
package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Directory resolves the entities a dashboard view joins across.
type Directory interface {
	Dashboard(id string) (domain.SharedDashboard, error)
	Job(id string) (domain.Job, error)
	User(id string) (domain.User, error)
	Company(id string) (domain.Company, error)
}

// View is the JSON shape of one shared dashboard.
type View struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"createdAt"`
	Job        JobView         `json:"job"`
	Applicants []ApplicantView `json:"applicants"`
}

// JobView is the job summary embedded in a dashboard view.
type JobView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// ApplicantView is one shared applicant row. Only the fields a hiring panel
// needs are exposed; AI fields and interview records stay internal.
type ApplicantView struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Rating int    `json:"rating"`
}

// Server hosts the read-only share surface.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
}

// New creates a share server listening on the provided address.
func New(addr string, directory Directory) (*Server, error) {
	if directory == nil {
		return nil, errors.New("directory is required")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           newMux(directory),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve runs the HTTP server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("share server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown share server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve share: %w", err)
	}
}

// Close releases share server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

func newMux(directory Directory) *http.ServeMux {
	mux := http.NewServeMux()
	h := &handler{directory: directory}
	mux.HandleFunc("GET /dashboards/{id}", h.getDashboard)
	return mux
}

type handler struct {
	directory Directory
}

func (h *handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	dashboard, err := h.directory.Dashboard(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	view, err := h.buildView(dashboard)
	if err != nil {
		// The job behind the dashboard is gone; the link resolves to nothing.
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("encode dashboard view: %v", err)
	}
}

func (h *handler) buildView(dashboard domain.SharedDashboard) (View, error) {
	job, err := h.directory.Job(dashboard.JobID)
	if err != nil {
		return View{}, fmt.Errorf("resolve dashboard job: %w", err)
	}
	var companyName string
	if company, err := h.directory.Company(job.CompanyID); err == nil {
		companyName = company.Name
	}

	view := View{
		ID:        dashboard.ID,
		CreatedAt: dashboard.CreatedAt,
		Job: JobView{
			ID:       job.ID,
			Title:    job.Title,
			Company:  companyName,
			Location: job.Location,
			Status:   string(job.Status),
		},
	}
	for _, userID := range dashboard.ApplicantUserIDs {
		detail, ok := job.Applicant(userID)
		if !ok {
			continue
		}
		user, err := h.directory.User(userID)
		if err != nil {
			continue
		}
		view.Applicants = append(view.Applicants, ApplicantView{
			Name:   user.Name,
			Title:  user.Title,
			Status: string(detail.Status),
			Rating: detail.Rating,
		})
	}
	return view, nil
}
