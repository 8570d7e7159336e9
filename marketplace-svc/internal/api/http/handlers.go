package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/gorilla/mux"
)

type Services struct {
	Catalog            service.CatalogServiceInterface
	Cart               service.CartServiceInterface
	Orders             service.OrderServiceInterface
	Ratings            service.RatingServiceInterface
	RestaurantRequests service.ApprovalServiceInterface
	DeliveryRequests   service.ApprovalServiceInterface
	CustomOrders       service.CustomOrderServiceInterface
	Reservations       service.ReservationServiceInterface
	Payments           service.PaymentServiceInterface
	Stats              service.StatsServiceInterface
	Addresses          service.AddressServiceInterface
}

type Handler struct {
	Services
	Auth       *Authenticator
	Log        *slog.Logger
	Production bool
}

func NewHandler(svc Services, auth *Authenticator, log *slog.Logger, production bool) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Services: svc, Auth: auth, Log: log, Production: production}
}

const (
	customer   = domain.RoleCustomer
	restaurant = domain.RoleRestaurant
	delivery   = domain.RoleDelivery
	admin      = domain.RoleAdmin
)

func (h *Handler) protect(fn http.HandlerFunc, roles ...domain.Role) http.Handler {
	return h.Auth.Require(roles...)(fn)
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.Handle("/api/restaurants", h.protect(h.createRestaurant, admin)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.Handle("/api/restaurants/{id:[0-9]+}", h.protect(h.updateRestaurant, restaurant, admin)).Methods("PUT")
	r.Handle("/api/restaurants/{id:[0-9]+}", h.protect(h.deleteRestaurant, admin)).Methods("DELETE")
	r.Handle("/api/restaurants/{id:[0-9]+}/block", h.protect(h.blockRestaurant, admin)).Methods("PUT")
	r.Handle("/api/restaurants/{id:[0-9]+}/image", h.protect(h.uploadRestaurantImage, restaurant, admin)).Methods("POST")
	r.Handle("/api/restaurants/{id:[0-9]+}/stats", h.protect(h.restaurantStats, restaurant, admin)).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId:[0-9]+}/dishes", h.getRestaurantDishes).Methods("GET")
	r.Handle("/api/restaurants/{restaurantId:[0-9]+}/dishes", h.protect(h.createDish, restaurant, admin)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId:[0-9]+}/dishes/{dishId:[0-9]+}", h.getDish).Methods("GET")
	r.Handle("/api/restaurants/{restaurantId:[0-9]+}/dishes/{dishId:[0-9]+}", h.protect(h.updateDish, restaurant, admin)).Methods("PUT")
	r.Handle("/api/restaurants/{restaurantId:[0-9]+}/dishes/{dishId:[0-9]+}", h.protect(h.deleteDish, restaurant, admin)).Methods("DELETE")
	r.Handle("/api/restaurants/{restaurantId:[0-9]+}/dishes/{dishId:[0-9]+}/image", h.protect(h.uploadDishImage, restaurant, admin)).Methods("POST")

	r.Handle("/api/users/cart", h.protect(h.getCart)).Methods("GET")
	r.Handle("/api/users/cart", h.protect(h.addToCart)).Methods("POST")
	r.Handle("/api/users/cart", h.protect(h.clearCart)).Methods("DELETE")
	r.Handle("/api/users/cart/{itemId:[0-9]+}", h.protect(h.updateCartItem)).Methods("PUT")
	r.Handle("/api/users/cart/{itemId:[0-9]+}", h.protect(h.removeCartItem)).Methods("DELETE")

	r.Handle("/api/users/addresses", h.protect(h.getAddresses)).Methods("GET")
	r.Handle("/api/users/addresses", h.protect(h.addAddress)).Methods("POST")

	h.registerApprovalRoutes(r, "/api/users/restaurant-requests", h.RestaurantRequests)
	h.registerApprovalRoutes(r, "/api/users/delivery-requests", h.DeliveryRequests)

	r.Handle("/api/orders", h.protect(h.createOrder, customer, admin)).Methods("POST")
	r.Handle("/api/orders/myorders", h.protect(h.myOrders)).Methods("GET")
	r.Handle("/api/orders/restaurant", h.protect(h.restaurantOrders, restaurant)).Methods("GET")
	r.Handle("/api/orders/delivery", h.protect(h.deliveryOrders, delivery)).Methods("GET")
	r.Handle("/api/orders/{id:[0-9]+}", h.protect(h.getOrder)).Methods("GET")
	r.Handle("/api/orders/{id:[0-9]+}/status", h.protect(h.updateOrderStatus)).Methods("PUT")
	r.Handle("/api/orders/{id:[0-9]+}/history", h.protect(h.orderHistory)).Methods("GET")
	r.Handle("/api/orders/{id:[0-9]+}/rate", h.protect(h.rateOrder)).Methods("POST")
	r.Handle("/api/orders/{id:[0-9]+}/qrcode", h.protect(h.getOrderQRCode)).Methods("GET")

	r.Handle("/api/custom-orders", h.protect(h.createCustomOrder)).Methods("POST")
	r.Handle("/api/custom-orders/myorders", h.protect(h.myCustomOrders)).Methods("GET")
	r.Handle("/api/custom-orders/restaurant", h.protect(h.restaurantCustomOrders, restaurant)).Methods("GET")
	r.Handle("/api/custom-orders/{orderId:[0-9]+}", h.protect(h.updateCustomOrder, restaurant, admin)).Methods("PUT")

	r.Handle("/api/payment/razorpay/order", h.protect(h.createCheckoutPayment)).Methods("POST")
	r.Handle("/api/payment/razorpay/verify", h.protect(h.verifyCheckoutPayment)).Methods("POST")
	r.Handle("/api/payment/custom-order/order", h.protect(h.createCustomOrderPayment)).Methods("POST")
	r.Handle("/api/payment/custom-order/verify", h.protect(h.verifyCustomOrderPayment)).Methods("POST")
	r.Handle("/api/payment/table-booking/order", h.protect(h.createTableBookingPayment)).Methods("POST")
	r.Handle("/api/payment/table-booking/verify", h.protect(h.verifyTableBookingPayment)).Methods("POST")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/availability", h.tableAvailability).Methods("GET")
	r.Handle("/api/tables", h.protect(h.createTable, restaurant, admin)).Methods("POST")
	r.Handle("/api/tables/{id:[0-9]+}", h.protect(h.updateTable, restaurant, admin)).Methods("PUT")
	r.Handle("/api/tables/{id:[0-9]+}", h.protect(h.deleteTable, restaurant, admin)).Methods("DELETE")

	r.Handle("/api/reservations", h.protect(h.createReservation)).Methods("POST")
	r.Handle("/api/reservations", h.protect(h.getReservations)).Methods("GET")
	r.Handle("/api/reservations/{id:[0-9]+}", h.protect(h.getReservation)).Methods("GET")
	r.Handle("/api/reservations/{id:[0-9]+}", h.protect(h.updateReservation)).Methods("PUT")
	r.Handle("/api/reservations/{id:[0-9]+}", h.protect(h.deleteReservation)).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "marketplace-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
