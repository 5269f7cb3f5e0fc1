package domain

// RejectReason classifies why an inbound message cannot become a Submission
type RejectReason string

const (
	RejectGroupedMedia RejectReason = "grouped_media"
	RejectTextOnly     RejectReason = "text_only"
	RejectNoContent    RejectReason = "no_content"
)

// Rejection is the typed outcome for a message that cannot be encoded.
// Message is the short human-readable reply sent back to the submitter.
type Rejection struct {
	Reason  RejectReason
	Message string
}
