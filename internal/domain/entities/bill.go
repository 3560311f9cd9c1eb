package entities

import "time"

// BillStatus is the lifecycle of a bill.
//
// pending ⇄ disputed → paid; a revise response returns any non-paid bill to
// pending with a new amount. paid is terminal for pay/dispute but a paid bill
// may still be revised (the amount guard only blocks pay and dispute).
type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusPaid     BillStatus = "paid"
	BillStatusDisputed BillStatus = "disputed"
)

// BillResponseType is a response appended to a bill's history. pay and
// dispute belong to the client, revise to the contractor.
type BillResponseType string

const (
	BillResponsePay     BillResponseType = "pay"
	BillResponseDispute BillResponseType = "dispute"
	BillResponseRevise  BillResponseType = "revise"
)

func (t BillResponseType) Valid() bool {
	switch t {
	case BillResponsePay, BillResponseDispute, BillResponseRevise:
		return true
	}
	return false
}

// AllowedFor gates response types by caller role.
func (t BillResponseType) AllowedFor(role Role) bool {
	switch t {
	case BillResponsePay, BillResponseDispute:
		return role == RoleClient
	case BillResponseRevise:
		return role == RoleContractor
	}
	return false
}

var billTransitions = map[BillStatus]map[BillResponseType]BillStatus{
	BillStatusPending: {
		BillResponsePay:     BillStatusPaid,
		BillResponseDispute: BillStatusDisputed,
		BillResponseRevise:  BillStatusPending,
	},
	BillStatusDisputed: {
		BillResponsePay:     BillStatusPaid,
		BillResponseDispute: BillStatusDisputed,
		BillResponseRevise:  BillStatusPending,
	},
	BillStatusPaid: {
		BillResponseRevise: BillStatusPending,
	},
}

func NextBillStatus(cur BillStatus, resp BillResponseType) (BillStatus, bool) {
	next, ok := billTransitions[cur][resp]
	return next, ok
}

// Bill is the payment obligation created exactly once when an order is
// completed, with amount seeded from the order's final price.
type Bill struct {
	ID        int64
	OrderID   int64
	ClientID  int64
	Amount    float64
	Status    BillStatus
	PaidAt    *time.Time
	CreatedAt time.Time

	Responses []BillResponse
}

// BillResponse is one append-only message on a bill. dispute carries a
// dispute note, revise a revised amount and optional revision note.
type BillResponse struct {
	ID            int64
	BillID        int64
	ResponderID   int64
	ResponseType  BillResponseType
	DisputeNote   string
	RevisedAmount float64
	RevisionNote  string
	CreatedAt     time.Time
}
