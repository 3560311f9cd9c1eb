package request

import (
	"time"

	"homeclean/internal/usecase"
)

// CreateQuoteRequest is the contractor payload for quoting or rejecting a
// request. For a rejection only rejection_reason is read; the schedule fields
// are for real quotes.
type CreateQuoteRequest struct {
	RequestID          int64   `json:"request_id" binding:"required"`
	AdjustedPrice      float64 `json:"adjusted_price"`
	ScheduledDate      string  `json:"scheduled_date"`
	ScheduledTimeStart string  `json:"scheduled_time_start"`
	ScheduledTimeEnd   string  `json:"scheduled_time_end"`
	Notes              string  `json:"notes"`
	IsRejection        bool    `json:"is_rejection"`
	RejectionReason    string  `json:"rejection_reason"`
}

func (r CreateQuoteRequest) ToInput() (usecase.CreateQuoteInput, error) {
	in := usecase.CreateQuoteInput{
		RequestID:          r.RequestID,
		AdjustedPrice:      r.AdjustedPrice,
		ScheduledTimeStart: r.ScheduledTimeStart,
		ScheduledTimeEnd:   r.ScheduledTimeEnd,
		Notes:              r.Notes,
		IsRejection:        r.IsRejection,
		RejectionReason:    r.RejectionReason,
	}
	if r.IsRejection {
		return in, nil
	}
	date, err := time.Parse(dateLayout, r.ScheduledDate)
	if err != nil {
		return usecase.CreateQuoteInput{}, ErrInvalidDate
	}
	in.ScheduledDate = date
	return in, nil
}

// QuoteResponseRequest is the client payload for responding to a quote.
type QuoteResponseRequest struct {
	ResponseType string `json:"response_type" binding:"required"`
	CounterNote  string `json:"counter_note"`
}
