package entity

// MaintenancePlan is a subscription tier customers can enroll in.
// PlanTier is unique across the collection, case-insensitively.
type MaintenancePlan struct {
	ID               string   `json:"id"`
	PlanTier         string   `json:"planTier"`
	AnnualFee        float64  `json:"annualFee"`
	IncludedServices []string `json:"includedServices"`
	PartsDiscountPct float64  `json:"partsDiscountPct"`
	Extras           []string `json:"extras"`
}
