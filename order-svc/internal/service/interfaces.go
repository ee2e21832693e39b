package service

import (
	"context"
	"time"

	"tableside/order-svc/internal/domain"
)

type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
}

type TableRepository interface {
	CreateTable(ctx context.Context, table *domain.Table) error
	GetTable(ctx context.Context, id string) (*domain.Table, error)
	GetTableByNumber(ctx context.Context, number int) (*domain.Table, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
	UpdateTable(ctx context.Context, table *domain.Table) error
	DeleteTable(ctx context.Context, id string) (int64, error)
}

type ServiceRequestRepository interface {
	CreateServiceRequest(ctx context.Context, req *domain.ServiceRequest) error
	GetServiceRequest(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListServiceRequests(ctx context.Context) ([]domain.ServiceRequest, error)
	UpdateServiceRequest(ctx context.Context, req *domain.ServiceRequest) error
}

type BillingRequestRepository interface {
	CreateBillingRequest(ctx context.Context, req *domain.BillingRequest) error
	GetBillingRequest(ctx context.Context, id string) (*domain.BillingRequest, error)
	ListBillingRequests(ctx context.Context) ([]domain.BillingRequest, error)
	UpdateBillingRequest(ctx context.Context, req *domain.BillingRequest) error
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, res *domain.Reservation) error
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, res *domain.Reservation) error
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, fb *domain.Feedback) error
	ListFeedback(ctx context.Context) ([]domain.Feedback, error)
}

type LoyaltyRepository interface {
	GetLoyaltyAccount(ctx context.Context, customerID string) (*domain.LoyaltyAccount, error)
	SaveLoyaltyAccount(ctx context.Context, account *domain.LoyaltyAccount) error
}

// Store is the persistence boundary. Implementations return domain.ErrNotFound
// for missing rows and domain.ErrDuplicateTableNumber on table number clashes.
type Store interface {
	MenuRepository
	OrderRepository
	TableRepository
	ServiceRequestRepository
	BillingRequestRepository
	ReservationRepository
	FeedbackRepository
	LoyaltyRepository
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type FeedbackCache interface {
	FeedbackMarkerKey(orderID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

// Notifier is told which entity type changed so that live views can refresh.
type Notifier interface {
	Publish(entity string)
}

type QRGenerator interface {
	Generate(tableNumber int) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, input MenuItemPatch) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, patch MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	UpdateImage(ctx context.Context, id, image string) (*domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	TransitionStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	MarkPaid(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, id string, patch OrderPatch) (*domain.Order, error)
}

type TableServiceInterface interface {
	Add(ctx context.Context, number, seats int) (*domain.Table, error)
	List(ctx context.Context) ([]domain.Table, error)
	Get(ctx context.Context, id string) (*domain.Table, error)
	GetByNumber(ctx context.Context, number int) (*domain.Table, error)
	Update(ctx context.Context, id string, patch TablePatch) (*domain.Table, error)
	Delete(ctx context.Context, id string) error
	Reserve(ctx context.Context, id, customerName, until string) (*domain.Table, error)
	Occupy(ctx context.Context, id, orderID string) (*domain.Table, error)
	Free(ctx context.Context, id string) (*domain.Table, error)
	SetMaintenance(ctx context.Context, id string) (*domain.Table, error)
	ClearMaintenance(ctx context.Context, id string) (*domain.Table, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type RequestServiceInterface interface {
	Raise(ctx context.Context, tableNumber int, requestType domain.RequestType) (*domain.ServiceRequest, error)
	Complete(ctx context.Context, id string) (*domain.ServiceRequest, error)
	List(ctx context.Context, status domain.RequestStatus) ([]domain.ServiceRequest, error)
	SweepExpired(ctx context.Context, olderThan time.Duration, now time.Time) (int, error)
	RaiseBill(ctx context.Context, tableNumber int) (*domain.BillingRequest, error)
	CompleteBill(ctx context.Context, id string) (*domain.BillingRequest, error)
	ListBills(ctx context.Context, status domain.RequestStatus) ([]domain.BillingRequest, error)
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, res *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, next domain.ReservationStatus, tableNumber int) (*domain.Reservation, error)
}

type FeedbackServiceInterface interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	List(ctx context.Context) ([]domain.Feedback, error)
}

type LoyaltyServiceInterface interface {
	Get(ctx context.Context, customerID string) (*LoyaltyStatus, error)
	Award(ctx context.Context, customerID string, points int) (*domain.LoyaltyAccount, error)
	Redeem(ctx context.Context, customerID, rewardID string) (*domain.LoyaltyAccount, error)
	Rewards() []domain.Reward
}

var (
	_ MenuServiceInterface        = (*MenuService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ TableServiceInterface       = (*TableService)(nil)
	_ RequestServiceInterface     = (*RequestService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ FeedbackServiceInterface    = (*FeedbackService)(nil)
	_ LoyaltyServiceInterface     = (*LoyaltyService)(nil)
)
