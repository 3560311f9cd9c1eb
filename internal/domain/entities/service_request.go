package entities

import "time"

// RequestStatus is the lifecycle of a service request. It is never changed by
// a direct client call: every transition fires as a side effect of the quote
// lifecycle (quote created, rejection created, quote accepted).
//
// pending → quote_sent → accepted
// pending → rejected
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusQuoteSent RequestStatus = "quote_sent"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusAccepted  RequestStatus = "accepted"
)

// RequestEvent is a quote-lifecycle side effect applied to the request.
type RequestEvent string

const (
	RequestEventQuoteSent     RequestEvent = "quote_sent"
	RequestEventQuoteRejected RequestEvent = "quote_rejected"
	RequestEventQuoteAccepted RequestEvent = "quote_accepted"
)

// requestTransitions is the explicit state × event → state table. Pairs not in
// the table are invalid and must be rejected before any write.
var requestTransitions = map[RequestStatus]map[RequestEvent]RequestStatus{
	RequestStatusPending: {
		RequestEventQuoteSent:     RequestStatusQuoteSent,
		RequestEventQuoteRejected: RequestStatusRejected,
	},
	RequestStatusQuoteSent: {
		// A renegotiating flow can spawn a fresh quote or end in a rejection.
		RequestEventQuoteSent:     RequestStatusQuoteSent,
		RequestEventQuoteRejected: RequestStatusRejected,
		RequestEventQuoteAccepted: RequestStatusAccepted,
	},
}

// NextRequestStatus resolves the transition table. ok=false means the pair is
// not a legal transition.
func NextRequestStatus(cur RequestStatus, ev RequestEvent) (RequestStatus, bool) {
	next, ok := requestTransitions[cur][ev]
	return next, ok
}

// Quotable reports whether a contractor may still create a quote for a
// request in this state.
func (s RequestStatus) Quotable() bool {
	return s == RequestStatusPending || s == RequestStatusQuoteSent
}

// CleaningType enumerates the offered service kinds.
type CleaningType string

const (
	CleaningTypeBasic   CleaningType = "basic"
	CleaningTypeDeep    CleaningType = "deep cleaning"
	CleaningTypeMoveOut CleaningType = "move-out"
)

func (t CleaningType) Valid() bool {
	switch t {
	case CleaningTypeBasic, CleaningTypeDeep, CleaningTypeMoveOut:
		return true
	}
	return false
}

// ServiceRequest is the client's initial ask for service. Requests are never
// deleted; the row is the audit trail for the whole negotiation.
type ServiceRequest struct {
	ID             int64
	ClientID       int64
	ServiceAddress string
	CleaningType   CleaningType
	NumRooms       int
	PreferredDate  time.Time
	PreferredTime  string
	ProposedBudget float64
	Notes          string
	Status         RequestStatus
	CreatedAt      time.Time
	Photos         []RequestPhoto
}

// RequestPhoto is one stored photo path. Rows are immutable once inserted,
// at most 5 per request.
type RequestPhoto struct {
	ID        int64
	RequestID int64
	PhotoPath string
	CreatedAt time.Time
}

// MaxRequestPhotos caps the photo sub-table per request.
const MaxRequestPhotos = 5
