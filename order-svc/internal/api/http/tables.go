package httpapi

import (
	"encoding/json"
	"net/http"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.Create(r.Context(), sess, &table); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) selectTable(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	table, err := h.Tables.Select(r.Context(), sess, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

type availabilityRequest struct {
	Available *bool `json:"available"`
}

func (h *Handler) setTableAvailability(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Available == nil {
		http.Error(w, "available must be true or false", http.StatusBadRequest)
		return
	}
	table, err := h.Tables.SetAvailability(r.Context(), sess, mux.Vars(r)["id"], *req.Available)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}
