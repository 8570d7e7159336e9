package service

import (
	"context"
	"io"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	SetRestaurantBlocked(ctx context.Context, id int, blocked bool) error
	DeleteRestaurant(ctx context.Context, id int) (int64, error)
	UpdateRestaurantImage(ctx context.Context, id int, imageURL string) error
	IncrementRestaurantTotals(ctx context.Context, id int, revenue float64) error

	CreateDish(ctx context.Context, dish *domain.Dish) error
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	GetDishesByIDs(ctx context.Context, ids []int) ([]domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, id int) (int64, error)
	UpdateDishImage(ctx context.Context, id int, imageURL string) error
	ApplyDishRating(ctx context.Context, dishID, rating int) error
}

type UserRepository interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	SetUserRestaurant(ctx context.Context, userID int, restaurantID *int) error
	SetUserRole(ctx context.Context, userID int, role domain.Role) error
	SetUserDeliveryPartner(ctx context.Context, userID int, partnerID *int) error
	ApplyPartnerRating(ctx context.Context, userID, rating int) error
	ListAddresses(ctx context.Context, userID int) ([]domain.Address, error)
	CreateAddress(ctx context.Context, userID int, addr *domain.Address) error
}

type OrderRepository interface {
	CreateParentOrder(ctx context.Context, parent *domain.ParentOrder) error
	CreateOrder(ctx context.Context, order *domain.Order) error
	SaveQRCode(ctx context.Context, parentID int, qr []byte) error
	GetQRCode(ctx context.Context, parentID int) ([]byte, error)
	GetParentOrder(ctx context.Context, id int) (*domain.ParentOrder, error)
	LockParentOrder(ctx context.Context, id int) (*domain.ParentOrder, error)
	FindParentByPaymentID(ctx context.Context, paymentID string) (*domain.ParentOrder, error)
	ListParentOrdersByUser(ctx context.Context, userID int) ([]domain.ParentOrder, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	LockOrder(ctx context.Context, id int) (*domain.Order, error)
	UpdateOrderState(ctx context.Context, order *domain.Order) error
	ListRestaurantOrders(ctx context.Context, restaurantID int) ([]domain.Order, error)
	ListDeliveryOrders(ctx context.Context, partnerID int) ([]domain.Order, error)
	AppendStatusHistory(ctx context.Context, change *domain.StatusChange) error
	ListStatusHistory(ctx context.Context, orderID int) ([]domain.StatusChange, error)
	SetDeliveryRating(ctx context.Context, parentID, rating int) error
	SetItemRating(ctx context.Context, itemID, rating int) error
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, req *domain.PartnerRequest) error
	GetRequestByUser(ctx context.Context, userID int, kind domain.RequestKind) (*domain.PartnerRequest, error)
	LockRequest(ctx context.Context, id int, kind domain.RequestKind) (*domain.PartnerRequest, error)
	ListRequests(ctx context.Context, kind domain.RequestKind, status domain.RequestStatus) ([]domain.PartnerRequest, error)
	DeleteRequest(ctx context.Context, id int) error
	UpdateRequestStatus(ctx context.Context, req *domain.PartnerRequest) error
}

type CustomOrderRepository interface {
	CreateCustomOrder(ctx context.Context, co *domain.CustomOrder) error
	GetCustomOrder(ctx context.Context, id int) (*domain.CustomOrder, error)
	LockCustomOrder(ctx context.Context, id int) (*domain.CustomOrder, error)
	UpdateCustomOrder(ctx context.Context, co *domain.CustomOrder) error
	ListCustomOrdersByUser(ctx context.Context, userID int) ([]domain.CustomOrder, error)
	ListCustomOrdersByRestaurant(ctx context.Context, restaurantID int) ([]domain.CustomOrder, error)
}

type ReservationRepository interface {
	CreateTable(ctx context.Context, table *domain.Table) error
	GetTable(ctx context.Context, id int) (*domain.Table, error)
	LockTable(ctx context.Context, id int) (*domain.Table, error)
	ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error)
	ListAvailableTables(ctx context.Context, restaurantID, partySize int, from, to time.Time) ([]domain.Table, error)
	UpdateTable(ctx context.Context, table *domain.Table) error
	DeleteTable(ctx context.Context, id int) (int64, error)
	CountTableConflicts(ctx context.Context, tableID int, from, to time.Time, excludeID int) (int, error)

	CreateReservation(ctx context.Context, res *domain.Reservation) error
	GetReservation(ctx context.Context, id int) (*domain.Reservation, error)
	LockReservation(ctx context.Context, id int) (*domain.Reservation, error)
	FindReservationByPaymentID(ctx context.Context, paymentID string) (*domain.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID int) ([]domain.Reservation, error)
	ListReservationsByRestaurant(ctx context.Context, restaurantID int) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, res *domain.Reservation) error
	DeleteReservation(ctx context.Context, id int) (int64, error)
}

// Repository is the full Postgres surface. WithTx runs fn against a
// transaction-bound copy and commits only if fn returns nil.
type Repository interface {
	CatalogRepository
	UserRepository
	OrderRepository
	RequestRepository
	CustomOrderRepository
	ReservationRepository
	WithTx(ctx context.Context, fn func(repo Repository) error) error
}

type CartStore interface {
	Items(ctx context.Context, userID int) (map[int]int, error)
	Add(ctx context.Context, userID, dishID, quantity int) error
	Set(ctx context.Context, userID, dishID, quantity int) error
	Remove(ctx context.Context, userID, dishID int) error
	Clear(ctx context.Context, userID int) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type ImageStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (*domain.GatewayOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*domain.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type StatsReader interface {
	TopDishes(ctx context.Context, restaurantID int, day time.Time, limit int) ([]domain.DishMetric, error)
	Revenue(ctx context.Context, restaurantID int, day time.Time) (float64, error)
}

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, actor *domain.User, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, actor *domain.User, id int, upd domain.RestaurantUpdate) (*domain.Restaurant, error)
	SetRestaurantBlocked(ctx context.Context, actor *domain.User, id int, blocked bool) error
	DeleteRestaurant(ctx context.Context, actor *domain.User, id int) error
	UploadRestaurantImage(ctx context.Context, actor *domain.User, id int, filename, contentType string, body io.Reader) (string, error)
	CreateDish(ctx context.Context, actor *domain.User, dish *domain.Dish) error
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	GetDish(ctx context.Context, restaurantID, dishID int) (*domain.Dish, error)
	UpdateDish(ctx context.Context, actor *domain.User, restaurantID, dishID int, upd domain.DishUpdate) (*domain.Dish, error)
	DeleteDish(ctx context.Context, actor *domain.User, restaurantID, dishID int) error
	UploadDishImage(ctx context.Context, actor *domain.User, restaurantID, dishID int, filename, contentType string, body io.Reader) (string, error)
}

type CartServiceInterface interface {
	View(ctx context.Context, userID int) (*domain.Cart, error)
	Add(ctx context.Context, userID, dishID, quantity int) (*domain.Cart, error)
	Update(ctx context.Context, userID, dishID, quantity int) (*domain.Cart, error)
	Remove(ctx context.Context, userID, dishID int) (*domain.Cart, error)
	Clear(ctx context.Context, userID int) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.ParentOrder, error)
	Quote(ctx context.Context, lines []domain.CheckoutLine) (float64, error)
	UpdateStatus(ctx context.Context, actor *domain.User, orderID int, status domain.OrderStatus) (*domain.Order, error)
	MyOrders(ctx context.Context, userID int) ([]domain.ParentOrder, error)
	GetParentOrder(ctx context.Context, actor *domain.User, id int) (*domain.ParentOrder, error)
	RestaurantOrders(ctx context.Context, actor *domain.User) ([]domain.Order, error)
	DeliveryOrders(ctx context.Context, actor *domain.User) ([]domain.Order, error)
	History(ctx context.Context, actor *domain.User, orderID int) ([]domain.StatusChange, error)
	QRCode(ctx context.Context, actor *domain.User, parentID int) ([]byte, error)
}

type RatingServiceInterface interface {
	Rate(ctx context.Context, req domain.RatingRequest) error
}

type ApprovalServiceInterface interface {
	Kind() domain.RequestKind
	Submit(ctx context.Context, user *domain.User, details []byte) (*domain.PartnerRequest, error)
	Mine(ctx context.Context, userID int) (*domain.PartnerRequest, error)
	List(ctx context.Context, status domain.RequestStatus) ([]domain.PartnerRequest, error)
	Approve(ctx context.Context, admin *domain.User, id int) (*domain.PartnerRequest, error)
	Reject(ctx context.Context, admin *domain.User, id int, reason string) (*domain.PartnerRequest, error)
}

type CustomOrderServiceInterface interface {
	Create(ctx context.Context, user *domain.User, co *domain.CustomOrder) error
	Update(ctx context.Context, actor *domain.User, id int, upd domain.CustomOrderUpdate) (*domain.CustomOrder, error)
	MyOrders(ctx context.Context, userID int) ([]domain.CustomOrder, error)
	RestaurantOrders(ctx context.Context, actor *domain.User) ([]domain.CustomOrder, error)
	PayableFor(ctx context.Context, user *domain.User, id int) (*domain.CustomOrder, error)
	ConvertPaid(ctx context.Context, user *domain.User, id int, paymentID string) (*domain.Order, error)
}

type ReservationServiceInterface interface {
	CreateTable(ctx context.Context, actor *domain.User, table *domain.Table) error
	ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error)
	UpdateTable(ctx context.Context, actor *domain.User, id int, upd domain.TableUpdate) (*domain.Table, error)
	DeleteTable(ctx context.Context, actor *domain.User, id int) error
	Availability(ctx context.Context, restaurantID, partySize int, at time.Time) ([]domain.Table, error)
	Reserve(ctx context.Context, actor *domain.User, res *domain.Reservation) error
	ReservePaid(ctx context.Context, actor *domain.User, res *domain.Reservation, paymentID string) (*domain.Reservation, error)
	Reservations(ctx context.Context, actor *domain.User, restaurantID int) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, actor *domain.User, id int) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, actor *domain.User, id int, upd domain.ReservationUpdate) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, actor *domain.User, id int) error
	BookingFee() float64
}

type PaymentServiceInterface interface {
	CreateCheckoutPayment(ctx context.Context, user *domain.User, lines []domain.CheckoutLine) (*domain.GatewayOrder, error)
	VerifyCheckoutPayment(ctx context.Context, proof domain.PaymentProof, req domain.CheckoutRequest) (*domain.ParentOrder, error)
	CreateCustomOrderPayment(ctx context.Context, user *domain.User, customOrderID int) (*domain.GatewayOrder, error)
	VerifyCustomOrderPayment(ctx context.Context, user *domain.User, proof domain.PaymentProof, customOrderID int) (*domain.Order, error)
	CreateTableBookingPayment(ctx context.Context, user *domain.User, res *domain.Reservation) (*domain.GatewayOrder, error)
	VerifyTableBookingPayment(ctx context.Context, user *domain.User, proof domain.PaymentProof, res *domain.Reservation) (*domain.Reservation, error)
}

type StatsServiceInterface interface {
	RestaurantStats(ctx context.Context, actor *domain.User, restaurantID int) (*domain.RestaurantStats, error)
}

type AddressServiceInterface interface {
	List(ctx context.Context, userID int) ([]domain.Address, error)
	Add(ctx context.Context, userID int, addr *domain.Address) error
}
