package entity

// PartsOrderStatus tracks procurement of parts for a job.
type PartsOrderStatus string

const (
	PartsOrderStatusOrdered     PartsOrderStatus = "ordered"
	PartsOrderStatusBackordered PartsOrderStatus = "backordered"
	PartsOrderStatusFulfilled   PartsOrderStatus = "fulfilled"
	PartsOrderStatusCanceled    PartsOrderStatus = "canceled"
)

// PartsOrderItem is one line of a parts order.
type PartsOrderItem struct {
	PartID      string  `json:"partId"`
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	CostEach    float64 `json:"costEach"`
}

// PartsOrder is a purchase of parts for an approved final quote.
// TotalCost must equal the sum of Qty×CostEach over Items, within a 0.001
// tolerance.
type PartsOrder struct {
	ID           string           `json:"id"`
	FinalQuoteID string           `json:"finalQuoteId"`
	Items        []PartsOrderItem `json:"items"`
	TotalCost    float64          `json:"totalCost"`
	Status       PartsOrderStatus `json:"status"`
	ETADate      *string          `json:"etaDate,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}
