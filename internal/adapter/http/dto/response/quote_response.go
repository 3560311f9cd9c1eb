package response

import (
	"time"

	"homeclean/internal/domain/entities"
)

type QuoteMessageResponse struct {
	ID           int64     `json:"id"`
	ResponderID  int64     `json:"responder_id"`
	ResponseType string    `json:"response_type"`
	CounterNote  string    `json:"counter_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuoteResponse struct {
	ID                 int64                  `json:"id"`
	RequestID          int64                  `json:"request_id"`
	ContractorID       int64                  `json:"contractor_id"`
	AdjustedPrice      float64                `json:"adjusted_price"`
	ScheduledDate      string                 `json:"scheduled_date"`
	ScheduledTimeStart string                 `json:"scheduled_time_start"`
	ScheduledTimeEnd   string                 `json:"scheduled_time_end"`
	Notes              string                 `json:"notes,omitempty"`
	IsRejection        bool                   `json:"is_rejection"`
	RejectionReason    string                 `json:"rejection_reason,omitempty"`
	Status             string                 `json:"status"`
	Responses          []QuoteMessageResponse `json:"responses"`
	CreatedAt          time.Time              `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	responses := make([]QuoteMessageResponse, 0, len(q.Responses))
	for _, r := range q.Responses {
		responses = append(responses, QuoteMessageResponse{
			ID:           r.ID,
			ResponderID:  r.ResponderID,
			ResponseType: string(r.ResponseType),
			CounterNote:  r.CounterNote,
			CreatedAt:    r.CreatedAt,
		})
	}
	return QuoteResponse{
		ID:                 q.ID,
		RequestID:          q.RequestID,
		ContractorID:       q.ContractorID,
		AdjustedPrice:      q.AdjustedPrice,
		ScheduledDate:      q.ScheduledDate.Format("2006-01-02"),
		ScheduledTimeStart: q.ScheduledTimeStart,
		ScheduledTimeEnd:   q.ScheduledTimeEnd,
		Notes:              q.Notes,
		IsRejection:        q.IsRejection,
		RejectionReason:    q.RejectionReason,
		Status:             string(q.Status),
		Responses:          responses,
		CreatedAt:          q.CreatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}
