package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "tiffinbox/marketplace-svc/internal/api/http"
	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type apiFixture struct {
	router   http.Handler
	repo     *mocks.Repository
	catalog  *mocks.CatalogServiceInterface
	cart     *mocks.CartServiceInterface
	orders   *mocks.OrderServiceInterface
	ratings  *mocks.RatingServiceInterface
	requests *mocks.ApprovalServiceInterface
}

// newAPI wires the router over service mocks. Users: 5 customer, 3 owner of
// restaurant 10, 4 owner of blocked restaurant 11, 1 admin, 9 unverified.
func newAPI(t *testing.T, production bool) *apiFixture {
	t.Helper()
	f := &apiFixture{
		repo:     mocks.NewRepository(t),
		catalog:  mocks.NewCatalogServiceInterface(t),
		cart:     mocks.NewCartServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		ratings:  mocks.NewRatingServiceInterface(t),
		requests: mocks.NewApprovalServiceInterface(t),
	}

	users := map[int]*domain.User{
		5: customer(5),
		3: restaurantOwner(3, 10),
		4: restaurantOwner(4, 11),
		1: adminUser(1),
		9: {ID: 9, Role: domain.RoleCustomer},
	}
	f.repo.On("GetUser", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, id int) (*domain.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, service.ErrNotFound
		}).Maybe()
	f.repo.On("GetRestaurant", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, id int) (*domain.Restaurant, error) {
			return &domain.Restaurant{ID: id, IsBlocked: id == 11}, nil
		}).Maybe()

	handler := httpapi.NewHandler(httpapi.Services{
		Catalog:            f.catalog,
		Cart:               f.cart,
		Orders:             f.orders,
		Ratings:            f.ratings,
		RestaurantRequests: f.requests,
		DeliveryRequests:   f.requests,
	}, httpapi.NewAuthenticator(testSecret, f.repo), quietLog, production)
	f.router = httpapi.NewRouter(handler, "")
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, userID int, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID > 0 {
		token, err := httpapi.IssueToken(testSecret, userID, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	api := newAPI(t, false)

	w := api.do(t, http.MethodGet, "/health", 0, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthBoundary(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		userID int
		body   string
	}{
		{name: "missing_token", method: http.MethodGet, path: "/api/orders/myorders"},
		{name: "unknown_user", method: http.MethodGet, path: "/api/orders/myorders", userID: 77},
		{name: "unverified_user", method: http.MethodGet, path: "/api/orders/myorders", userID: 9},
		{name: "customer_blocks_restaurant", method: http.MethodPut, path: "/api/restaurants/10/block", userID: 5, body: `{"blocked":true}`},
		{name: "blocked_restaurant_owner", method: http.MethodGet, path: "/api/orders/restaurant", userID: 4},
		{name: "customer_approves_request", method: http.MethodPut, path: "/api/users/restaurant-requests/2/approve", userID: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPI(t, false)

			w := api.do(t, tt.method, tt.path, tt.userID, tt.body)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["message"])
		})
	}
}

func TestAuthBoundary_BadSignature(t *testing.T) {
	api := newAPI(t, false)
	token, err := httpapi.IssueToken("another-secret", 5, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/myorders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newAPI(t, false)
		api.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(req domain.CheckoutRequest) bool {
			return req.UserID == 5 && len(req.Items) == 2 && req.Items[1].Quantity == 3 &&
				req.DeliveryAddress.City == "Pune"
		})).Return(&domain.ParentOrder{ID: 500, UserID: 5, TotalPrice: 400}, nil).Once()

		w := api.do(t, http.MethodPost, "/api/orders", 5,
			`{"orderItems":[{"dish":1,"qty":1},{"dish":2,"qty":3}],"deliveryAddress":{"street":"12 MG Road","city":"Pune"},"paymentMethod":"cod"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(500), decodeBody(t, w)["id"])
	})

	t.Run("error_online_payment_needs_verify", func(t *testing.T) {
		api := newAPI(t, false)

		w := api.do(t, http.MethodPost, "/api/orders", 5,
			`{"orderItems":[{"dish":1,"qty":1}],"deliveryAddress":{"street":"x","city":"y"},"paymentMethod":"razorpay"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_missing_dishes", func(t *testing.T) {
		api := newAPI(t, false)
		api.orders.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, &service.MissingDishesError{DishIDs: []int{7}}).Once()

		w := api.do(t, http.MethodPost, "/api/orders", 5,
			`{"orderItems":[{"dish":7,"qty":1}],"deliveryAddress":{"street":"x","city":"y"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["message"], "[7]")
	})

	t.Run("error_restaurant_role", func(t *testing.T) {
		api := newAPI(t, false)

		w := api.do(t, http.MethodPost, "/api/orders", 3,
			`{"orderItems":[{"dish":1,"qty":1}],"deliveryAddress":{"street":"x","city":"y"}}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error_bad_json", func(t *testing.T) {
		api := newAPI(t, false)

		w := api.do(t, http.MethodPost, "/api/orders", 5, `{"orderItems":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		production   bool
		expectedCode int
		expectStack  bool
	}{
		{name: "not_found", err: service.ErrNotFound, expectedCode: http.StatusNotFound},
		{name: "forbidden", err: service.ErrForbidden, expectedCode: http.StatusUnauthorized},
		{name: "already_rated", err: service.ErrAlreadyRated, expectedCode: http.StatusConflict},
		{name: "dish_not_in_order", err: service.ErrDishNotInOrder, expectedCode: http.StatusBadRequest},
		{name: "duplicate_key", err: &pq.Error{Code: "23505", Constraint: "parent_orders_payment_id_key"}, expectedCode: http.StatusBadRequest},
		{name: "internal_with_stack", err: assert.AnError, expectedCode: http.StatusInternalServerError, expectStack: true},
		{name: "internal_in_production", err: assert.AnError, production: true, expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPI(t, tt.production)
			api.ratings.On("Rate", mock.Anything, domain.RatingRequest{
				ParentID:       50,
				UserID:         5,
				DeliveryRating: intPtr(4),
			}).Return(tt.err).Once()

			w := api.do(t, http.MethodPost, "/api/orders/50/rate", 5, `{"deliveryRating":4}`)

			assert.Equal(t, tt.expectedCode, w.Code)
			body := decodeBody(t, w)
			assert.NotEmpty(t, body["message"])
			_, hasStack := body["stack"]
			assert.Equal(t, tt.expectStack, hasStack)
		})
	}
}

func TestRateOrderHandler_Success(t *testing.T) {
	api := newAPI(t, false)
	api.ratings.On("Rate", mock.Anything, mock.MatchedBy(func(req domain.RatingRequest) bool {
		return req.ParentID == 50 && req.UserID == 5 && req.DeliveryRating == nil &&
			len(req.DishRatings) == 1 && req.DishRatings[0] == domain.DishRating{DishID: 1, Rating: 5}
	})).Return(nil).Once()

	w := api.do(t, http.MethodPost, "/api/orders/50/rate", 5, `{"dishRatings":[{"dishId":1,"rating":5}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ratings submitted", decodeBody(t, w)["message"])
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	api := newAPI(t, false)
	api.orders.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.ID == 3 }),
		901, domain.StatusPreparing).
		Return(&domain.Order{ID: 901, Status: domain.StatusPreparing}, nil).Once()
	api.orders.On("UpdateStatus", mock.Anything, mock.Anything, 902, domain.StatusDelivered).
		Return(nil, service.ErrInvalidTransition).Once()

	api.orders.On("UpdateStatus", mock.Anything, mock.Anything, 903, domain.OrderStatus("")).
		Return(nil, service.ValidationError{Field: "orderStatus", Message: "unknown status"}).Once()

	w := api.do(t, http.MethodPut, "/api/orders/901/status", 3, `{"orderStatus":"preparing"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "preparing", decodeBody(t, w)["order_status"])

	w = api.do(t, http.MethodPut, "/api/orders/902/status", 3, `{"orderStatus":"delivered"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the body key is orderStatus; a bare status field is ignored
	w = api.do(t, http.MethodPut, "/api/orders/903/status", 3, `{"status":"preparing"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandlers(t *testing.T) {
	api := newAPI(t, false)
	empty := &domain.Cart{UserID: 5, Items: []domain.CartItem{}}

	api.cart.On("Add", mock.Anything, 5, 1, 1).Return(empty, nil).Once()
	api.cart.On("Update", mock.Anything, 5, 1, 0).Return(empty, nil).Once()
	api.cart.On("Clear", mock.Anything, 5).Return(nil).Once()

	assert.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/users/cart", 5, `{"dishId":1}`).Code)
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodPut, "/api/users/cart/1", 5, `{"quantity":0}`).Code)
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodDelete, "/api/users/cart", 5, "").Code)
}

func TestBlockRestaurantHandler(t *testing.T) {
	api := newAPI(t, false)
	api.catalog.On("SetRestaurantBlocked", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.ID == 1 }), 10, true).
		Return(nil).Once()

	w := api.do(t, http.MethodPut, "/api/restaurants/10/block", 1, `{"blocked":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(10), body["id"])
	assert.Equal(t, true, body["is_blocked"])
}

func TestSubmitRestaurantRequestHandler(t *testing.T) {
	api := newAPI(t, false)
	api.requests.On("Submit", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.ID == 5 }),
		[]byte(restaurantApplication)).
		Return(nil, service.ErrRequestExists).Once()

	w := api.do(t, http.MethodPost, "/api/users/restaurant-requests", 5, restaurantApplication)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
