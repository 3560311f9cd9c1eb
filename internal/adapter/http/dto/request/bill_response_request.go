package request

// BillResponseRequest is the payload for responding to a bill. dispute_note
// matters for dispute, revised_amount and revision_note for revise.
type BillResponseRequest struct {
	ResponseType  string  `json:"response_type" binding:"required"`
	DisputeNote   string  `json:"dispute_note"`
	RevisedAmount float64 `json:"revised_amount"`
	RevisionNote  string  `json:"revision_note"`
}
