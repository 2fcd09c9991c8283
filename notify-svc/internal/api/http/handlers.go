package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-ordering/notify-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Verifier      service.VerifierInterface
	Notifications service.NotificationServiceInterface
	Analytics     service.AnalyticsServiceInterface
	Hub           *Hub
	Log           *logrus.Entry
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/notifications", h.admin(h.listNotifications)).Methods("GET")
	r.HandleFunc("/api/notifications/ws", h.admin(h.subscribe)).Methods("GET")
	r.HandleFunc("/api/notifications/{id}/read", h.admin(h.markRead)).Methods("POST")

	r.HandleFunc("/api/analytics/top-today", h.admin(h.topToday)).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.admin(h.topAllTime)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "notify-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		http.Error(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, service.ErrForbidden.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, service.ErrNotFound.Error(), http.StatusNotFound)
	default:
		h.Log.WithError(err).Error("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// requestToken reads the bearer header, falling back to the token query
// parameter browsers use for websocket handshakes.
func requestToken(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return r.URL.Query().Get("token")
}

func (h *Handler) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.Verifier.Admin(r.Context(), requestToken(r)); err != nil {
			h.writeError(w, err)
			return
		}
		next(w, r)
	}
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Notifications.List(r.Context(), queryLimit(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Notifications.MarkRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	h.Hub.Serve(w, r)
}

func (h *Handler) topToday(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.Analytics.TopToday(r.Context(), queryLimit(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func (h *Handler) topAllTime(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.Analytics.TopAllTime(r.Context(), queryLimit(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}
