package entity

import "encoding/json"

// BusinessSettings are company-wide scheduling and billing defaults stored
// alongside the collections.
type BusinessSettings struct {
	CancellationWindowHours int     `json:"cancellationWindowHours"`
	CancellationFee         float64 `json:"cancellationFee"`
	QuoteExpiryDays         int     `json:"quoteExpiryDays"`
	ServiceFeeRange         string  `json:"serviceFeeRange"`
	SchedulingWindow        string  `json:"schedulingWindow"`
}

// Snapshot is the complete persisted document: every named collection plus
// the business settings, serialized as one JSON object.
type Snapshot struct {
	Customers        []Customer        `json:"customers"`
	Services         []ServiceOffering `json:"services"`
	MaintenancePlans []MaintenancePlan `json:"maintenancePlans"`
	QuoteRequests    []QuoteRequest    `json:"quoteRequests"`
	Appointments     []Appointment     `json:"appointments"`
	Inspections      []Inspection      `json:"inspections"`
	FinalQuotes      []FinalQuote      `json:"finalQuotes"`
	Invoices         []Invoice         `json:"invoices"`
	Payments         []Payment         `json:"payments"`
	PartsOrders      []PartsOrder      `json:"partsOrders"`
	BusinessSettings BusinessSettings  `json:"businessSettings"`
}

// NewSnapshot returns an empty snapshot with default business settings, the
// document bootstrapped onto durable storage on first access.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Customers:        []Customer{},
		Services:         []ServiceOffering{},
		MaintenancePlans: []MaintenancePlan{},
		QuoteRequests:    []QuoteRequest{},
		Appointments:     []Appointment{},
		Inspections:      []Inspection{},
		FinalQuotes:      []FinalQuote{},
		Invoices:         []Invoice{},
		Payments:         []Payment{},
		PartsOrders:      []PartsOrder{},
		BusinessSettings: BusinessSettings{
			CancellationWindowHours: 24,
			CancellationFee:         0,
			QuoteExpiryDays:         14,
			ServiceFeeRange:         "$0-$0",
			SchedulingWindow:        "Mon–Sat 8:00-18:00",
		},
	}
}

// Clone returns a deep copy of the snapshot so callers can mutate freely
// without aliasing the store's cache.
func (s *Snapshot) Clone() *Snapshot {
	raw, err := json.Marshal(s)
	if err != nil {
		// Snapshot is a closed set of marshalable types.
		panic(err)
	}

	clone := new(Snapshot)
	if err := json.Unmarshal(raw, clone); err != nil {
		panic(err)
	}

	return clone
}
