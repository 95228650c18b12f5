package models

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Currency    string  `json:"currency,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	OrgID       string  `json:"orgId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}
