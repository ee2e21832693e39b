package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
)

type OrderType string

const (
	OrderDineIn     OrderType = "dine-in"
	OrderTakeout    OrderType = "takeout"
	OrderOrderAhead OrderType = "order-ahead"
)

type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentUPI  PaymentMode = "upi"
)

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableOccupied    TableStatus = "occupied"
	TableReserved    TableStatus = "reserved"
	TableMaintenance TableStatus = "maintenance"
)

type RequestType string

const (
	RequestStaff    RequestType = "staff"
	RequestWater    RequestType = "water"
	RequestHotWater RequestType = "hot-water"
	RequestCleaning RequestType = "cleaning"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestCompleted RequestStatus = "completed"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type MenuItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Image           string          `json:"image,omitempty"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsSpicy         bool            `json:"isSpicy"`
	PreparationTime int             `json:"preparationTime"`
	InStock         bool            `json:"inStock"`
	Inventory       int             `json:"inventory"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderLine is one menu item within an order. UnitPrice and Name are copied from
// the menu when the order is placed and never change afterwards.
type OrderLine struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Pack       bool            `json:"pack"`
}

type Order struct {
	ID                  string          `json:"id"`
	TableID             string          `json:"tableId"`
	TableNumber         int             `json:"table"`
	CustomerID          string          `json:"customerId,omitempty"`
	Lines               []OrderLine     `json:"items"`
	Status              OrderStatus     `json:"status"`
	OrderType           OrderType       `json:"orderType"`
	PaymentMode         PaymentMode     `json:"paymentMode"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	LoyaltyPointsEarned int             `json:"loyaltyPointsEarned"`
	ScheduledTime       *time.Time      `json:"scheduledTime,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type Table struct {
	ID             string      `json:"id"`
	Number         int         `json:"number"`
	Seats          int         `json:"seats"`
	Status         TableStatus `json:"status"`
	CurrentOrderID string      `json:"currentOrderId,omitempty"`
	ReservedBy     string      `json:"reservedBy,omitempty"`
	ReservedUntil  string      `json:"reservedUntil,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type ServiceRequest struct {
	ID          string        `json:"id"`
	TableNumber int           `json:"table"`
	RequestType RequestType   `json:"requestType"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

type BillingRequest struct {
	ID          string        `json:"id"`
	TableNumber int           `json:"table"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

type Reservation struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	PartySize       int               `json:"partySize"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	TableNumber     int               `json:"table,omitempty"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type Feedback struct {
	ID          string    `json:"id"`
	TableNumber int       `json:"table"`
	OrderID     string    `json:"orderId,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LoyaltyAccount struct {
	CustomerID  string    `json:"customerId"`
	Points      int       `json:"points"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

type Tier struct {
	Name      string   `json:"name"`
	MinPoints int      `json:"minPoints"`
	Benefits  []string `json:"benefits"`
}

// Event is the message published to the event stream for downstream aggregation.
type Event struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id,omitempty"`
	TableNumber int             `json:"table,omitempty"`
	Status      OrderStatus     `json:"status,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []EventItem     `json:"items,omitempty"`
	Rating      int             `json:"rating,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

type EventItem struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderPaid          = "order_paid"
	EventNewFeedback        = "new_feedback"
)
