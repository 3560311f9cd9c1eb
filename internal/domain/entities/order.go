package entities

import "time"

// OrderStatus is the lifecycle of a service order.
//
// scheduled → in_progress → completed; canceled is terminal but unreachable
// through any exposed operation, kept for schema completeness.
type OrderStatus string

const (
	OrderStatusScheduled  OrderStatus = "scheduled"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

type OrderEvent string

const (
	OrderEventStart    OrderEvent = "start"
	OrderEventComplete OrderEvent = "complete"
)

var orderTransitions = map[OrderStatus]map[OrderEvent]OrderStatus{
	OrderStatusScheduled: {
		OrderEventStart:    OrderStatusInProgress,
		OrderEventComplete: OrderStatusCompleted,
	},
	OrderStatusInProgress: {
		OrderEventComplete: OrderStatusCompleted,
	},
}

func NextOrderStatus(cur OrderStatus, ev OrderEvent) (OrderStatus, bool) {
	next, ok := orderTransitions[cur][ev]
	return next, ok
}

// ServiceOrder is the scheduled, price-locked commitment created exactly once
// when a quote is accepted. Schedule and price are copied from the accepted
// quote inside the same transaction that marks it accepted.
type ServiceOrder struct {
	ID                 int64
	RequestID          int64
	QuoteID            int64
	ClientID           int64
	ScheduledDate      time.Time
	ScheduledTimeStart string
	ScheduledTimeEnd   string
	FinalPrice         float64
	Status             OrderStatus
	CompletedAt        *time.Time
	CreatedAt          time.Time
}
