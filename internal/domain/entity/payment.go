package entity

// Payment records money received against an invoice.
type Payment struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	PaidOn    string  `json:"paidOn"`
	Method    string  `json:"method"`
	Reference *string `json:"reference,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}
