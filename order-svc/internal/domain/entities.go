package domain

// Entity names used as refresh topics.
const (
	EntityMenu            = "menu"
	EntityOrders          = "orders"
	EntityTables          = "tables"
	EntityServiceRequests = "service-requests"
	EntityBillingRequests = "billing-requests"
	EntityReservations    = "reservations"
	EntityFeedback        = "feedback"
)

var Entities = []string{
	EntityMenu,
	EntityOrders,
	EntityTables,
	EntityServiceRequests,
	EntityBillingRequests,
	EntityReservations,
	EntityFeedback,
}
