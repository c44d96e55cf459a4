package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iljeong-app/iljeong/dateutil"
	"github.com/iljeong-app/iljeong/event"
	"github.com/iljeong-app/iljeong/overlap"
	"github.com/iljeong-app/iljeong/storage"
)

// Handler serves the event API.
type Handler struct {
	store  storage.EventStore
	logger *slog.Logger
}

// NewHandler creates a handler over the given store.
func NewHandler(store storage.EventStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes attaches the API routes to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/events/overlaps", h.findOverlaps).Methods(http.MethodPost)
	r.HandleFunc("/api/events", h.listEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/events", h.createEvent).Methods(http.MethodPost)
	r.HandleFunc("/api/events/{id}/ics", h.exportEvent).Methods(http.MethodGet)
	r.HandleFunc("/api/events/{id}", h.getEvent).Methods(http.MethodGet)
	r.HandleFunc("/api/events/{id}", h.updateEvent).Methods(http.MethodPut)
	r.HandleFunc("/api/events/{id}", h.deleteEvent).Methods(http.MethodDelete)
}

type eventsResponse struct {
	Events []event.Event `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listEvents returns the stored events. The optional search, view and date
// query parameters push the composed filter down into the store.
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var opts *storage.ListOptions
	if q.Has("search") || q.Has("view") {
		ref := time.Now()
		if d := event.ParseDate(q.Get("date")); event.IsValid(d) {
			ref = d
		}
		opts = &storage.ListOptions{
			Search:    q.Get("search"),
			Reference: ref,
			View:      dateutil.View(q.Get("view")),
		}
	}

	events, err := h.store.List(r.Context(), opts)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventsResponse{Events: events})
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var ev event.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.store.Create(r.Context(), ev)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	var ev event.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ev.ID = mux.Vars(r)["id"]

	updated, err := h.store.Update(r.Context(), ev)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// exportEvent serves a single event as an iCalendar document.
func (h *Handler) exportEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.storeError(w, err)
		return
	}

	ics, err := event.ToICS(ev)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set(headerContentType, mimeTypeCalendar)
	if _, err := w.Write([]byte(ics)); err != nil {
		h.logger.Error("failed to write calendar response", "err", err)
	}
}

// findOverlaps is the save-flow conflict check: it returns every stored event
// whose time range overlaps the candidate in the request body. It only
// detects; the client decides whether to save anyway.
func (h *Handler) findOverlaps(w http.ResponseWriter, r *http.Request) {
	var candidate event.Event
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := h.store.List(r.Context(), nil)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventsResponse{
		Events: overlap.FindOverlapping(candidate, existing),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(headerContentType, mimeTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// storeError maps typed storage errors onto HTTP statuses.
func (h *Handler) storeError(w http.ResponseWriter, err error) {
	var serr *storage.Error
	if errors.As(err, &serr) {
		switch serr.Type {
		case storage.ErrNotFound:
			h.writeError(w, http.StatusNotFound, serr.Message)
			return
		case storage.ErrAlreadyExists:
			h.writeError(w, http.StatusConflict, serr.Message)
			return
		case storage.ErrInvalidInput:
			h.writeError(w, http.StatusBadRequest, serr.Message)
			return
		}
	}
	h.logger.Error("unexpected storage error", "err", err)
	h.writeError(w, http.StatusInternalServerError, "internal error")
}
