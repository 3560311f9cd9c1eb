package response

import (
	"time"

	"homeclean/internal/domain/entities"
)

type OrderResponse struct {
	ID                 int64      `json:"id"`
	RequestID          int64      `json:"request_id"`
	QuoteID            int64      `json:"quote_id"`
	ClientID           int64      `json:"client_id"`
	ScheduledDate      string     `json:"scheduled_date"`
	ScheduledTimeStart string     `json:"scheduled_time_start"`
	ScheduledTimeEnd   string     `json:"scheduled_time_end"`
	FinalPrice         float64    `json:"final_price"`
	Status             string     `json:"status"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		RequestID:          o.RequestID,
		QuoteID:            o.QuoteID,
		ClientID:           o.ClientID,
		ScheduledDate:      o.ScheduledDate.Format("2006-01-02"),
		ScheduledTimeStart: o.ScheduledTimeStart,
		ScheduledTimeEnd:   o.ScheduledTimeEnd,
		FinalPrice:         o.FinalPrice,
		Status:             string(o.Status),
		CompletedAt:        o.CompletedAt,
		CreatedAt:          o.CreatedAt,
	}
}

func FromOrders(os []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrder(o))
	}
	return out
}
