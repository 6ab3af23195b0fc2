package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/weekcal/internal/handler"
	"github.com/dukerupert/weekcal/internal/middleware"
	"github.com/dukerupert/weekcal/internal/store"
)

type Server struct {
	calendarH *handler.CalendarHandler
	logger    *slog.Logger
}

// New builds the server on top of the kv table in db.
func New(db *sql.DB, logger *slog.Logger) *Server {
	return NewWithBlobs(store.NewBlobStore(db), logger)
}

// NewWithBlobs builds the server on any blob store.
func NewWithBlobs(blobs store.Blobs, logger *slog.Logger) *Server {
	snapshots := store.NewEventSnapshotStore(blobs, logger.With("component", "storage"))
	return &Server{
		calendarH: handler.NewCalendarHandler(snapshots, logger.With("component", "calendar")),
		logger:    logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Editor actions
	mux.HandleFunc("POST /events/new", s.calendarH.Create)
	mux.HandleFunc("POST /events/{id}/edit", s.calendarH.Edit)
	mux.HandleFunc("POST /events/save", s.calendarH.Save)
	mux.HandleFunc("POST /events/delete", s.calendarH.Delete)
	mux.HandleFunc("POST /events/modality", s.calendarH.Modality)
	mux.HandleFunc("POST /dialog/close", s.calendarH.CloseDialog)

	// Read-only API
	mux.HandleFunc("GET /api/events", s.calendarH.List)

	// Page
	mux.HandleFunc("GET /", s.calendarH.Page)

	httpLogger := s.logger.With("component", "http")
	return middleware.RequestLogger(httpLogger)(middleware.Recover(httpLogger)(mux))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
