package domain

import "time"

// ServiceOffering is a catalog entry an expert publishes for customers to
// browse and book against.
type ServiceOffering struct {
	ID          string    `json:"id"`
	ExpertID    string    `json:"expert_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	BasePrice   float64   `json:"base_price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
