package entities

import "testing"

func TestNextQuoteStatus(t *testing.T) {
	cases := []struct {
		name string
		cur  QuoteStatus
		resp QuoteResponseType
		want QuoteStatus
		ok   bool
	}{
		{"pending accept", QuoteStatusPending, QuoteResponseAccept, QuoteStatusAccepted, true},
		{"pending renegotiate", QuoteStatusPending, QuoteResponseRenegotiate, QuoteStatusRenegotiating, true},
		{"pending counter", QuoteStatusPending, QuoteResponseCounter, QuoteStatusRenegotiating, true},
		{"renegotiating accept", QuoteStatusRenegotiating, QuoteResponseAccept, QuoteStatusAccepted, true},
		{"renegotiating counter", QuoteStatusRenegotiating, QuoteResponseCounter, QuoteStatusRenegotiating, true},
		{"accepted is terminal", QuoteStatusAccepted, QuoteResponseAccept, "", false},
		{"accepted blocks counter", QuoteStatusAccepted, QuoteResponseCounter, "", false},
		{"rejected is terminal", QuoteStatusRejected, QuoteResponseRenegotiate, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextQuoteStatus(tc.cur, tc.resp)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && next != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, next)
			}
		})
	}
}

func TestQuoteStatusFinal(t *testing.T) {
	if QuoteStatusPending.Final() || QuoteStatusRenegotiating.Final() {
		t.Fatalf("pending/renegotiating must not be final")
	}
	if !QuoteStatusAccepted.Final() || !QuoteStatusRejected.Final() {
		t.Fatalf("accepted/rejected must be final")
	}
}

func TestNextRequestStatus(t *testing.T) {
	cases := []struct {
		name string
		cur  RequestStatus
		ev   RequestEvent
		want RequestStatus
		ok   bool
	}{
		{"pending quote sent", RequestStatusPending, RequestEventQuoteSent, RequestStatusQuoteSent, true},
		{"pending rejected", RequestStatusPending, RequestEventQuoteRejected, RequestStatusRejected, true},
		{"pending cannot accept", RequestStatusPending, RequestEventQuoteAccepted, "", false},
		{"quote_sent new quote", RequestStatusQuoteSent, RequestEventQuoteSent, RequestStatusQuoteSent, true},
		{"quote_sent accepted", RequestStatusQuoteSent, RequestEventQuoteAccepted, RequestStatusAccepted, true},
		{"quote_sent rejected", RequestStatusQuoteSent, RequestEventQuoteRejected, RequestStatusRejected, true},
		{"rejected is terminal", RequestStatusRejected, RequestEventQuoteSent, "", false},
		{"accepted is terminal", RequestStatusAccepted, RequestEventQuoteSent, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextRequestStatus(tc.cur, tc.ev)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && next != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, next)
			}
		})
	}
}

func TestRequestStatusQuotable(t *testing.T) {
	if !RequestStatusPending.Quotable() || !RequestStatusQuoteSent.Quotable() {
		t.Fatalf("pending/quote_sent must be quotable")
	}
	if RequestStatusRejected.Quotable() || RequestStatusAccepted.Quotable() {
		t.Fatalf("rejected/accepted must not be quotable")
	}
}

func TestNextOrderStatus(t *testing.T) {
	if next, ok := NextOrderStatus(OrderStatusScheduled, OrderEventComplete); !ok || next != OrderStatusCompleted {
		t.Fatalf("scheduled+complete should yield completed, got %s ok=%v", next, ok)
	}
	if next, ok := NextOrderStatus(OrderStatusInProgress, OrderEventComplete); !ok || next != OrderStatusCompleted {
		t.Fatalf("in_progress+complete should yield completed, got %s ok=%v", next, ok)
	}
	if _, ok := NextOrderStatus(OrderStatusCompleted, OrderEventComplete); ok {
		t.Fatalf("completed must be terminal")
	}
	if _, ok := NextOrderStatus(OrderStatusCanceled, OrderEventStart); ok {
		t.Fatalf("canceled must be terminal")
	}
}

func TestNextBillStatus(t *testing.T) {
	cases := []struct {
		name string
		cur  BillStatus
		resp BillResponseType
		want BillStatus
		ok   bool
	}{
		{"pending pay", BillStatusPending, BillResponsePay, BillStatusPaid, true},
		{"pending dispute", BillStatusPending, BillResponseDispute, BillStatusDisputed, true},
		{"pending revise", BillStatusPending, BillResponseRevise, BillStatusPending, true},
		{"disputed pay", BillStatusDisputed, BillResponsePay, BillStatusPaid, true},
		{"disputed revise", BillStatusDisputed, BillResponseRevise, BillStatusPending, true},
		{"paid blocks pay", BillStatusPaid, BillResponsePay, "", false},
		{"paid blocks dispute", BillStatusPaid, BillResponseDispute, "", false},
		{"paid allows revise", BillStatusPaid, BillResponseRevise, BillStatusPending, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextBillStatus(tc.cur, tc.resp)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && next != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, next)
			}
		})
	}
}

func TestBillResponseTypeAllowedFor(t *testing.T) {
	if !BillResponsePay.AllowedFor(RoleClient) || !BillResponseDispute.AllowedFor(RoleClient) {
		t.Fatalf("client must be allowed to pay and dispute")
	}
	if BillResponseRevise.AllowedFor(RoleClient) {
		t.Fatalf("client must not be allowed to revise")
	}
	if !BillResponseRevise.AllowedFor(RoleContractor) {
		t.Fatalf("contractor must be allowed to revise")
	}
	if BillResponsePay.AllowedFor(RoleContractor) || BillResponseDispute.AllowedFor(RoleContractor) {
		t.Fatalf("contractor must not be allowed to pay or dispute")
	}
}
