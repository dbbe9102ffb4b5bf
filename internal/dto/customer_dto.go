package dto

// CustomerFilter is bound from the query string of GET /v1/customers.
type CustomerFilter struct {
	// Search matches name, contact number and CNIC as a substring.
	Search string `form:"q"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CustomerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactNumber string  `json:"contact_number"`
	CNIC          *string `json:"cnic"`
	Address       string  `json:"address"`
	CreatedAt     string  `json:"created_at"`
}

type CustomerListResponse struct {
	Data  []CustomerResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
