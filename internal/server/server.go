// Package server exposes the tracker over a small local JSON API. It is
// a presentation collaborator: all state rules live in pkg/tracker.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/soft-challenge/soft75/pkg/habits"
	"github.com/soft-challenge/soft75/pkg/model"
	"github.com/soft-challenge/soft75/pkg/tracker"
)

// Server provides the HTTP API over a tracker.
type Server struct {
	tracker *tracker.Tracker
	catalog *habits.Catalog
	mux     *http.ServeMux
	logger  *slog.Logger
	metrics *metrics
}

// NewServer creates an API server.
func NewServer(t *tracker.Tracker, catalog *habits.Catalog, logger *slog.Logger) *Server {
	s := &Server{
		tracker: t,
		catalog: catalog,
		mux:     http.NewServeMux(),
		logger:  logger,
		metrics: newMetrics(),
	}
	s.metrics.progress.Set(float64(t.Progress()))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/state", s.handleState)
	s.mux.HandleFunc("GET /api/v1/progress", s.handleProgress)
	s.mux.HandleFunc("GET /api/v1/habits", s.handleHabits)
	s.mux.HandleFunc("GET /api/v1/journal", s.handleJournal)
	s.mux.HandleFunc("POST /api/v1/toggle", s.handleToggle)
	s.mux.HandleFunc("POST /api/v1/reset", s.handleReset)
	s.mux.HandleFunc("PUT /api/v1/start-date", s.handleStartDate)
	s.mux.HandleFunc("POST /api/v1/days/{day}/hide", s.handleHide)
	s.mux.HandleFunc("POST /api/v1/days/{day}/unhide", s.handleUnhide)
	s.mux.Handle("GET /metrics", s.metrics.handler())
}

// Handler returns the HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

type stateResponse struct {
	Days        model.State `json:"days"`
	StartDate   string      `json:"start_date,omitempty"`
	HiddenDays  []int       `json:"hidden_days"`
	ProgressPct int         `json:"progress_pct"`
	PicPolicy   string      `json:"pic_policy"`
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, stateResponse{
		Days:        s.tracker.State(),
		StartDate:   s.tracker.StartDate(),
		HiddenDays:  s.tracker.HiddenDays(),
		ProgressPct: s.tracker.Progress(),
		PicPolicy:   s.tracker.Policy().Name(),
	})
}

func (s *Server) handleProgress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]int{"progress_pct": s.tracker.Progress()})
}

func (s *Server) handleHabits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.catalog.All())
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := s.tracker.Journal(ctx, limit)
	if err != nil {
		s.logger.Error("query journal", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	writeJSON(w, entries)
}

type toggleRequest struct {
	Day   int    `json:"day"`
	Habit string `json:"habit"`
}

type toggleResponse struct {
	Changed     bool            `json:"changed"`
	Day         int             `json:"day"`
	Record      model.DayRecord `json:"record"`
	ProgressPct int             `json:"progress_pct"`
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	habit, err := model.ParseHabit(req.Habit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	changed := s.tracker.Toggle(r.Context(), req.Day, habit)
	if changed {
		s.metrics.toggles.WithLabelValues(string(habit)).Inc()
	}
	s.metrics.progress.Set(float64(s.tracker.Progress()))

	rec, _ := s.tracker.Day(req.Day)
	writeJSON(w, toggleResponse{
		Changed:     changed,
		Day:         req.Day,
		Record:      rec,
		ProgressPct: s.tracker.Progress(),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Confirm {
		// Reset is gated on an explicit confirmation from the caller.
		http.Error(w, "confirmation required", http.StatusBadRequest)
		return
	}

	s.tracker.Reset(r.Context())
	s.metrics.resets.Inc()
	s.metrics.progress.Set(0)
	writeJSON(w, map[string]int{"progress_pct": 0})
}

func (s *Server) handleStartDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate string `json:"start_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.tracker.SetStartDate(r.Context(), req.StartDate); err != nil {
		http.Error(w, "start date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"start_date": s.tracker.StartDate()})
}

func (s *Server) handleHide(w http.ResponseWriter, r *http.Request) {
	s.handleVisibility(w, r, s.tracker.HideDay)
}

func (s *Server) handleUnhide(w http.ResponseWriter, r *http.Request) {
	s.handleVisibility(w, r, s.tracker.UnhideDay)
}

func (s *Server) handleVisibility(w http.ResponseWriter, r *http.Request, op func(context.Context, int) bool) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}

	changed := op(r.Context(), day)
	writeJSON(w, map[string]any{
		"changed":     changed,
		"hidden_days": s.tracker.HiddenDays(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
