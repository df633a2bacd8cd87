package entity

// FindingSeverity grades how serious an inspection finding is.
type FindingSeverity string

const (
	FindingSeverityLow      FindingSeverity = "low"
	FindingSeverityModerate FindingSeverity = "moderate"
	FindingSeverityHigh     FindingSeverity = "high"
)

// InspectionFinding is one observed issue recorded during an inspection.
type InspectionFinding struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Severity    FindingSeverity `json:"severity"`
}

// InspectionAdjustment is an estimate adjustment discovered on site.
type InspectionAdjustment struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// Inspection is the on-site assessment of a quote request.
type Inspection struct {
	ID                  string                 `json:"id"`
	QuoteRequestID      string                 `json:"quoteRequestId"`
	Technician          string                 `json:"technician"`
	Findings            []InspectionFinding    `json:"findings"`
	Adjustments         []InspectionAdjustment `json:"adjustments"`
	RecommendedServices []string               `json:"recommendedServices"`
}
