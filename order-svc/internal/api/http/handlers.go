package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Auth      service.AuthServiceInterface
	Menu      service.MenuServiceInterface
	Carts     service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Orders    service.OrderServiceInterface
	Tables    service.TableServiceInterface
	UploadDir string
	Log       *logrus.Entry
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.authed(h.logout)).Methods("POST")
	r.HandleFunc("/api/me", h.authed(h.me)).Methods("GET")

	r.HandleFunc("/api/menu/{category}", h.listDishes).Methods("GET")
	r.HandleFunc("/api/menu/{category}", h.authed(h.createDish)).Methods("POST")
	r.HandleFunc("/api/menu/{category}/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/menu/{category}/{dishId}", h.authed(h.updateDish)).Methods("PUT")
	r.HandleFunc("/api/menu/{category}/{dishId}", h.authed(h.deleteDish)).Methods("DELETE")
	r.HandleFunc("/api/menu/{category}/{dishId}/image", h.authed(h.uploadDishImage)).Methods("POST")

	r.HandleFunc("/api/cart", h.authed(h.getCart)).Methods("GET")
	r.HandleFunc("/api/cart", h.authed(h.clearCart)).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.authed(h.addCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/items/{category}/{dishId}", h.authed(h.removeCartItem)).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.authed(h.checkout)).Methods("POST")

	r.HandleFunc("/api/orders", h.authed(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/export", h.authed(h.exportOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{userId}/{orderId}", h.authed(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{userId}/{orderId}/status", h.authed(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{userId}/{orderId}/qrcode", h.authed(h.getOrderQRCode)).Methods("GET")

	r.HandleFunc("/api/bill/split", h.splitBill).Methods("GET")

	r.HandleFunc("/api/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/tables", h.authed(h.createTable)).Methods("POST")
	r.HandleFunc("/api/tables/{id}/select", h.authed(h.selectTable)).Methods("POST")
	r.HandleFunc("/api/tables/{id}/availability", h.authed(h.setTableAvailability)).Methods("PUT")

	if h.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

var errorStatus = []struct {
	err  error
	code int
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrCartEmpty, http.StatusBadRequest},
	{service.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest},
	{service.ErrInvalidDish, http.StatusBadRequest},
	{service.ErrInvalidTable, http.StatusBadRequest},
	{service.ErrInvalidSplit, http.StatusBadRequest},
	{service.ErrInvalidRegistration, http.StatusBadRequest},
	{service.ErrTableUnavailable, http.StatusConflict},
	{service.ErrInvalidTransition, http.StatusConflict},
	{service.ErrEmailTaken, http.StatusConflict},
	{service.ErrBackendUnavailable, http.StatusServiceUnavailable},
}

// writeError answers with the status and message of the first known error
// in err's chain. Anything else is logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	for _, known := range errorStatus {
		if errors.Is(err, known.err) {
			if known.code >= http.StatusInternalServerError {
				h.Log.WithError(err).Warn("backend unavailable")
			}
			http.Error(w, known.err.Error(), known.code)
			return
		}
	}
	h.Log.WithError(err).Error("request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, sess *domain.Session)

// authed resolves the bearer token into a session and passes it on.
func (h *Handler) authed(next sessionHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
		if err != nil {
			h.writeError(w, err)
			return
		}
		next(w, r, sess)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Auth.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	token, sess, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Session: sess})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Auth.Logout(r.Context(), sess); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	writeJSON(w, http.StatusOK, sess)
}
