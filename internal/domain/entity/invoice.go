package entity

// Invoice bills an approved final quote.
// PaymentRef is required whenever Paid is true.
type Invoice struct {
	ID           string  `json:"id"`
	FinalQuoteID string  `json:"finalQuoteId"`
	AmountDue    float64 `json:"amountDue"`
	CreatedOn    string  `json:"createdOn"`
	DueDate      string  `json:"dueDate"`
	Paid         bool    `json:"paid"`
	PaymentRef   *string `json:"paymentRef"`
}
