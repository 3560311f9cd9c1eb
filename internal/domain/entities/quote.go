package entities

import "time"

// QuoteStatus is the lifecycle of a contractor quote.
//
// pending ⇄ renegotiating → accepted | rejected
//
// accepted and rejected are terminal: the engine refuses any further response
// once a quote reaches either, and a rejection-quote is born rejected.
type QuoteStatus string

const (
	QuoteStatusPending       QuoteStatus = "pending"
	QuoteStatusRenegotiating QuoteStatus = "renegotiating"
	QuoteStatusAccepted      QuoteStatus = "accepted"
	QuoteStatusRejected      QuoteStatus = "rejected"
)

// Final reports whether the status is terminal.
func (s QuoteStatus) Final() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected
}

// QuoteResponseType is a client response appended to a quote's history.
type QuoteResponseType string

const (
	QuoteResponseAccept      QuoteResponseType = "accept"
	QuoteResponseRenegotiate QuoteResponseType = "renegotiate"
	QuoteResponseCounter     QuoteResponseType = "counter"
)

func (t QuoteResponseType) Valid() bool {
	switch t {
	case QuoteResponseAccept, QuoteResponseRenegotiate, QuoteResponseCounter:
		return true
	}
	return false
}

// RequiresNote reports whether the response type needs a counter note.
func (t QuoteResponseType) RequiresNote() bool {
	return t != QuoteResponseAccept
}

// quoteTransitions: state × response → state. The response history is the
// authority; the persisted status is a derived cache kept consistent with the
// latest response through this table plus a conditional UPDATE guard.
var quoteTransitions = map[QuoteStatus]map[QuoteResponseType]QuoteStatus{
	QuoteStatusPending: {
		QuoteResponseAccept:      QuoteStatusAccepted,
		QuoteResponseRenegotiate: QuoteStatusRenegotiating,
		QuoteResponseCounter:     QuoteStatusRenegotiating,
	},
	QuoteStatusRenegotiating: {
		QuoteResponseAccept:      QuoteStatusAccepted,
		QuoteResponseRenegotiate: QuoteStatusRenegotiating,
		QuoteResponseCounter:     QuoteStatusRenegotiating,
	},
}

func NextQuoteStatus(cur QuoteStatus, resp QuoteResponseType) (QuoteStatus, bool) {
	next, ok := quoteTransitions[cur][resp]
	return next, ok
}

// Quote is the contractor's priced counter-offer to a service request, or a
// rejection of it. A rejection is modeled as a degenerate quote: price 0,
// dummy schedule, is_rejection=true and a required rejection reason, born with
// status rejected.
//
// ClientID is not a quote column; it is joined in from the owning request for
// ownership checks and display.
type Quote struct {
	ID                 int64
	RequestID          int64
	ContractorID       int64
	AdjustedPrice      float64
	ScheduledDate      time.Time
	ScheduledTimeStart string
	ScheduledTimeEnd   string
	Notes              string
	IsRejection        bool
	RejectionReason    string
	Status             QuoteStatus
	CreatedAt          time.Time

	ClientID  int64
	Responses []QuoteResponse
}

// QuoteResponse is one append-only negotiation message on a quote. Rows are
// never mutated.
type QuoteResponse struct {
	ID           int64
	QuoteID      int64
	ResponderID  int64
	ResponseType QuoteResponseType
	CounterNote  string
	CreatedAt    time.Time
}
