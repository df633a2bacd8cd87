package entity

// Urgency classifies how quickly a quote request needs attention.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

// QuoteStatus tracks a quote request through its lifecycle, from intake to
// an approved or declined final quote.
type QuoteStatus string

const (
	QuoteStatusNew                QuoteStatus = "new"
	QuoteStatusAwaitingScheduling QuoteStatus = "awaiting-scheduling"
	QuoteStatusScheduled          QuoteStatus = "scheduled"
	QuoteStatusInspectionComplete QuoteStatus = "inspection-complete"
	QuoteStatusAwaitingApproval   QuoteStatus = "awaiting-approval"
	QuoteStatusApproved           QuoteStatus = "approved"
	QuoteStatusDeclined           QuoteStatus = "declined"
)

// QuoteRequest is a customer's intake request for an estimate.
type QuoteRequest struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	ContactPhone  string      `json:"contactPhone"`
	Email         string      `json:"email"`
	Address       string      `json:"address"`
	ServiceType   string      `json:"serviceType"`
	Urgency       Urgency     `json:"urgency"`
	RequestedDate string      `json:"requestedDate"`
	UnitAgeYears  *float64    `json:"unitAgeYears,omitempty"`
	Symptoms      []string    `json:"symptoms"`
	Notes         *string     `json:"notes,omitempty"`
	Status        QuoteStatus `json:"status"`
}
