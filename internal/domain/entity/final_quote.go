package entity

// FinalQuoteStatus tracks a final quote from draft to resolution.
type FinalQuoteStatus string

const (
	FinalQuoteStatusDraft            FinalQuoteStatus = "draft"
	FinalQuoteStatusAwaitingApproval FinalQuoteStatus = "awaiting-approval"
	FinalQuoteStatusApproved         FinalQuoteStatus = "approved"
	FinalQuoteStatusExpired          FinalQuoteStatus = "expired"
	FinalQuoteStatusDeclined         FinalQuoteStatus = "declined"
)

// FinalQuote is the priced quote produced after inspection.
// FinalTotal must be at least BaseEstimate plus AdjustmentsTotal.
type FinalQuote struct {
	ID               string           `json:"id"`
	QuoteRequestID   string           `json:"quoteRequestId"`
	BaseEstimate     float64          `json:"baseEstimate"`
	AdjustmentsTotal float64          `json:"adjustmentsTotal"`
	FinalTotal       float64          `json:"finalTotal"`
	ExpiresOn        string           `json:"expiresOn"`
	Status           FinalQuoteStatus `json:"status"`
}
