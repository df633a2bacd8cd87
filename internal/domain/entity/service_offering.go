package entity

// ServiceOffering is a catalog entry for a type of work the company performs.
type ServiceOffering struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	BasePriceRange string `json:"basePriceRange"`
	Description    string `json:"description"`
}
