package response

import (
	"time"

	"homeclean/internal/domain/entities"
)

type BillMessageResponse struct {
	ID            int64     `json:"id"`
	ResponderID   int64     `json:"responder_id"`
	ResponseType  string    `json:"response_type"`
	DisputeNote   string    `json:"dispute_note,omitempty"`
	RevisedAmount float64   `json:"revised_amount,omitempty"`
	RevisionNote  string    `json:"revision_note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BillResponse struct {
	ID        int64                 `json:"id"`
	OrderID   int64                 `json:"order_id"`
	ClientID  int64                 `json:"client_id"`
	Amount    float64               `json:"amount"`
	Status    string                `json:"status"`
	PaidAt    *time.Time            `json:"paid_at,omitempty"`
	Responses []BillMessageResponse `json:"responses"`
	CreatedAt time.Time             `json:"created_at"`
}

func FromBill(b entities.Bill) BillResponse {
	responses := make([]BillMessageResponse, 0, len(b.Responses))
	for _, r := range b.Responses {
		responses = append(responses, BillMessageResponse{
			ID:            r.ID,
			ResponderID:   r.ResponderID,
			ResponseType:  string(r.ResponseType),
			DisputeNote:   r.DisputeNote,
			RevisedAmount: r.RevisedAmount,
			RevisionNote:  r.RevisionNote,
			CreatedAt:     r.CreatedAt,
		})
	}
	return BillResponse{
		ID:        b.ID,
		OrderID:   b.OrderID,
		ClientID:  b.ClientID,
		Amount:    b.Amount,
		Status:    string(b.Status),
		PaidAt:    b.PaidAt,
		Responses: responses,
		CreatedAt: b.CreatedAt,
	}
}

func FromBills(bs []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBill(b))
	}
	return out
}
