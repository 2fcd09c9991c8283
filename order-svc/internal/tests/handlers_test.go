package tests

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-ordering/order-svc/internal/api/http"
	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/mocks"
	"restaurant-ordering/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	auth     *mocks.AuthServiceInterface
	menu     *mocks.MenuServiceInterface
	carts    *mocks.CartServiceInterface
	checkout *mocks.CheckoutServiceInterface
	orders   *mocks.OrderServiceInterface
	tables   *mocks.TableServiceInterface

	uploadDir string
}

func setupTestRouter(t *testing.T) (handlerMocks, *mux.Router) {
	m := handlerMocks{
		auth:     mocks.NewAuthServiceInterface(t),
		menu:     mocks.NewMenuServiceInterface(t),
		carts:    mocks.NewCartServiceInterface(t),
		checkout: mocks.NewCheckoutServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		tables:   mocks.NewTableServiceInterface(t),

		uploadDir: t.TempDir(),
	}
	handler := &httpapi.Handler{
		Auth:      m.auth,
		Menu:      m.menu,
		Carts:     m.carts,
		Checkout:  m.checkout,
		Orders:    m.orders,
		Tables:    m.tables,
		UploadDir: m.uploadDir,
		Log:       quietLogger(),
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return m, r
}

func (m handlerMocks) signIn(sess *domain.Session) {
	m.auth.On("Authenticate", mock.Anything, "token-"+sess.UserID).Return(sess, nil).Once()
}

func serve(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_checkout(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"payment_method":"card","notes":"sin cebolla"}`,
			prepareMocks: func(m handlerMocks) {
				m.signIn(customer)
				m.checkout.On("Checkout", mock.Anything, customer, domain.PaymentCard, "sin cebolla").
					Return(domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusPending, Total: decimal.RequireFromString("43.00")}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"o1"`,
		},
		{
			name:    "empty cart",
			payload: `{"payment_method":"card"}`,
			prepareMocks: func(m handlerMocks) {
				m.signIn(customer)
				m.checkout.On("Checkout", mock.Anything, customer, domain.PaymentCard, "").
					Return(domain.Order{}, service.ErrCartEmpty).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "cart is empty",
		},
		{
			name:    "backend down",
			payload: `{"payment_method":"cash"}`,
			prepareMocks: func(m handlerMocks) {
				m.signIn(customer)
				m.checkout.On("Checkout", mock.Anything, customer, domain.PaymentCash, "").
					Return(domain.Order{}, service.ErrBackendUnavailable).Once()
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "temporarily unavailable",
		},
		{
			name:    "invalid json",
			payload: `bad json`,
			prepareMocks: func(m handlerMocks) {
				m.signIn(customer)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m, router := setupTestRouter(t)
			testCase.prepareMocks(m)

			recorder := serve(router, "POST", "/api/checkout", "token-u1", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_requiresSignIn(t *testing.T) {
	m, router := setupTestRouter(t)
	m.auth.On("Authenticate", mock.Anything, "").Return(nil, service.ErrUnauthenticated).Once()

	recorder := serve(router, "POST", "/api/checkout", "", `{"payment_method":"card"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_updateOrderStatus(t *testing.T) {
	tests := []struct {
		name         string
		session      *domain.Session
		returnErr    error
		expectedCode int
	}{
		{name: "delivered", session: admin, expectedCode: http.StatusOK},
		{name: "invalid transition", session: admin, returnErr: service.ErrInvalidTransition, expectedCode: http.StatusConflict},
		{name: "unknown status", session: admin, returnErr: service.ErrInvalidStatus, expectedCode: http.StatusBadRequest},
		{name: "not admin", session: customer, returnErr: service.ErrForbidden, expectedCode: http.StatusForbidden},
		{name: "missing order", session: admin, returnErr: service.ErrNotFound, expectedCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m, router := setupTestRouter(t)
			m.signIn(testCase.session)

			var order *domain.Order
			if testCase.returnErr == nil {
				order = &domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusDelivered}
			}
			m.orders.On("UpdateStatus", mock.Anything, testCase.session, "u1", "o1", domain.StatusDelivered).
				Return(order, testCase.returnErr).Once()

			recorder := serve(router, "PUT", "/api/orders/u1/o1/status", "token-"+testCase.session.UserID, `{"status":"delivered"}`)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_listOrders(t *testing.T) {
	t.Run("customer sees own history", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.signIn(customer)
		m.orders.On("History", mock.Anything, customer).Return([]domain.Order{{ID: "o1", UserID: "u1"}}, nil).Once()

		recorder := serve(router, "GET", "/api/orders", "token-u1", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":"o1"`)
	})

	t.Run("admin sees grouped orders", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.signIn(admin)
		m.orders.On("ListAll", mock.Anything, admin).
			Return([]domain.UserOrders{{UserID: "u1", UserName: "Ana", Orders: []domain.Order{{ID: "o1"}}}}, nil).Once()

		recorder := serve(router, "GET", "/api/orders", "token-admin", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"user_name":"Ana"`)
	})
}

func TestHandler_selectTable(t *testing.T) {
	m, router := setupTestRouter(t)

	m.signIn(customer)
	m.tables.On("Select", mock.Anything, customer, "t1").Return(&domain.Table{ID: "t1", Name: "Mesa 1", Capacity: 4}, nil).Once()
	recorder := serve(router, "POST", "/api/tables/t1/select", "token-u1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"available":false`)

	m.signIn(customer)
	m.tables.On("Select", mock.Anything, customer, "t2").Return(nil, service.ErrTableUnavailable).Once()
	recorder = serve(router, "POST", "/api/tables/t2/select", "token-u1", "")
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "no longer available")
}

func TestHandler_setTableAvailability(t *testing.T) {
	m, router := setupTestRouter(t)

	m.signIn(admin)
	recorder := serve(router, "PUT", "/api/tables/t1/availability", "token-admin", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	m.signIn(admin)
	m.tables.On("SetAvailability", mock.Anything, admin, "t1", true).Return(&domain.Table{ID: "t1", Available: true}, nil).Once()
	recorder = serve(router, "PUT", "/api/tables/t1/availability", "token-admin", `{"available":true}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_cartItems(t *testing.T) {
	m, router := setupTestRouter(t)
	c := paellaCart()

	m.signIn(customer)
	m.carts.On("AddItem", mock.Anything, customer, domain.CategoryMains, "paella").Return(c, nil).Once()
	recorder := serve(router, "POST", "/api/cart/items", "token-u1", `{"category":"platos-fuertes","dish_id":"paella"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":"43"`)

	m.signIn(customer)
	m.carts.On("RemoveItem", mock.Anything, customer, domain.CategoryDrinks, "sangria").Return(c, nil).Once()
	recorder = serve(router, "DELETE", "/api/cart/items/bebidas/sangria", "token-u1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	m.signIn(customer)
	recorder = serve(router, "POST", "/api/cart/items", "token-u1", `{"category":"bebidas"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_menu(t *testing.T) {
	m, router := setupTestRouter(t)

	m.menu.On("List", mock.Anything, domain.Category("pizzas")).Return(nil, service.ErrNotFound).Once()
	recorder := serve(router, "GET", "/api/menu/pizzas", "", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	m.menu.On("List", mock.Anything, domain.CategoryMains).Return([]domain.Dish{paella}, nil).Once()
	recorder = serve(router, "GET", "/api/menu/platos-fuertes", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"price":"18.5"`)

	m.signIn(customer)
	m.menu.On("Create", mock.Anything, customer, mock.Anything).Return(service.ErrForbidden).Once()
	recorder = serve(router, "POST", "/api/menu/postres", "token-u1", `{"name":"Flan","price":"4.50"}`)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_splitBill(t *testing.T) {
	_, router := setupTestRouter(t)

	tests := []struct {
		name         string
		query        string
		expectedCode int
		expectedBody string
	}{
		{name: "three people", query: "total=100&people=3", expectedCode: http.StatusOK, expectedBody: `"per_person":"33.33"`},
		{name: "zero people", query: "total=100&people=0", expectedCode: http.StatusBadRequest},
		{name: "bad total", query: "total=abc&people=2", expectedCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := serve(router, "GET", "/api/bill/split?"+testCase.query, "", "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_login(t *testing.T) {
	m, router := setupTestRouter(t)

	m.auth.On("Login", mock.Anything, "ana@example.com", "paella123").Return("jwt-token", customer, nil).Once()
	recorder := serve(router, "POST", "/api/auth/login", "", `{"email":"ana@example.com","password":"paella123"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"token":"jwt-token"`)

	m.auth.On("Login", mock.Anything, "ana@example.com", "nope").Return("", nil, service.ErrInvalidCredentials).Once()
	recorder = serve(router, "POST", "/api/auth/login", "", `{"email":"ana@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	m.auth.On("Register", mock.Anything, "ana@example.com", "paella123", "Ana").Return(domain.User{}, service.ErrEmailTaken).Once()
	recorder = serve(router, "POST", "/api/auth/register", "", `{"email":"ana@example.com","password":"paella123","display_name":"Ana"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_exportOrders(t *testing.T) {
	m, router := setupTestRouter(t)
	m.signIn(admin)
	m.orders.On("Export", mock.Anything, admin, mock.Anything).Return(nil).Once()

	recorder := serve(router, "GET", "/api/orders/export", "token-admin", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "orders.xlsx")
}

func imageUpload(t *testing.T, path string, sess *domain.Session) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="dish.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer token-"+sess.UserID)
	return req
}

func TestHandler_uploadDishImage(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		session      *domain.Session
		setupMocks   func(m handlerMocks)
		expectedCode int
		wantFile     string
	}{
		{
			name: "unknown dish leaves no file behind",
			path:    "/api/menu/postres/ghost/image",
			session: admin,
			setupMocks: func(m handlerMocks) {
				m.signIn(admin)
				m.menu.On("Get", mock.Anything, domain.CategoryDesserts, "ghost").Return(nil, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "existing dish gets its image",
			path:    "/api/menu/platos-fuertes/paella/image",
			session: admin,
			setupMocks: func(m handlerMocks) {
				m.signIn(admin)
				dish := paella
				m.menu.On("Get", mock.Anything, domain.CategoryMains, "paella").Return(&dish, nil).Once()
				m.menu.On("UpdateImage", mock.Anything, admin, domain.CategoryMains, "paella", "/uploads/dish_platos-fuertes_paella.png").Return(nil).Once()
			},
			expectedCode: http.StatusOK,
			wantFile:     "dish_platos-fuertes_paella.png",
		},
		{
			name: "customer is forbidden",
			path:    "/api/menu/platos-fuertes/paella/image",
			session: customer,
			setupMocks: func(m handlerMocks) {
				m.signIn(customer)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m, router := setupTestRouter(t)
			testCase.setupMocks(m)

			req := imageUpload(t, testCase.path, testCase.session)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			entries, err := os.ReadDir(m.uploadDir)
			require.NoError(t, err)
			if testCase.wantFile == "" {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, testCase.wantFile, entries[0].Name())
		})
	}
}
