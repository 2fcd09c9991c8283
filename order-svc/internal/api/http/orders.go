package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	c, err := h.Carts.Get(r.Context(), sess)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type cartItemRequest struct {
	Category domain.Category `json:"category"`
	DishID   string          `json:"dish_id"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Category == "" || req.DishID == "" {
		http.Error(w, "category and dish_id are required", http.StatusBadRequest)
		return
	}
	c, err := h.Carts.AddItem(r.Context(), sess, req.Category, req.DishID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	c, err := h.Carts.RemoveItem(r.Context(), sess, category(r), mux.Vars(r)["dishId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Carts.Clear(r.Context(), sess); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type checkoutRequest struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
}

type checkoutResponse struct {
	ID    string       `json:"id"`
	Order domain.Order `json:"order"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.Checkout(r.Context(), sess, req.PaymentMethod, req.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{ID: order.ID, Order: order})
}

// listOrders returns the caller's own history, or every order grouped by
// customer for administrators.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if sess.IsAdmin() {
		groups, err := h.Orders.ListAll(r.Context(), sess)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, groups)
		return
	}

	orders, err := h.Orders.History(r.Context(), sess)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	vars := mux.Vars(r)
	order, err := h.Orders.Get(r.Context(), sess, vars["userId"], vars["orderId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	order, err := h.Orders.UpdateStatus(r.Context(), sess, vars["userId"], vars["orderId"], req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	vars := mux.Vars(r)
	png, err := h.Orders.QRCode(r.Context(), sess, vars["userId"], vars["orderId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var buf bytes.Buffer
	if err := h.Orders.Export(r.Context(), sess, &buf); err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

type splitResponse struct {
	Total     decimal.Decimal `json:"total"`
	People    int             `json:"people"`
	PerPerson decimal.Decimal `json:"per_person"`
}

func (h *Handler) splitBill(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	total, err := decimal.NewFromString(query.Get("total"))
	if err != nil {
		http.Error(w, "total must be a decimal amount", http.StatusBadRequest)
		return
	}
	people, err := strconv.Atoi(query.Get("people"))
	if err != nil {
		h.writeError(w, service.ErrInvalidSplit)
		return
	}

	share, err := service.SplitBill(total, people)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, splitResponse{Total: total, People: people, PerPerson: share})
}
