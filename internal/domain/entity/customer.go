// Package entity contains the persisted business records of the system.
package entity

// Customer is a property owner who requests service.
// Email is unique across the collection, case-insensitively.
type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PrimaryAddress string  `json:"primaryAddress"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	PlanTier       *string `json:"planTier,omitempty"` // optional maintenance plan tier label
}
