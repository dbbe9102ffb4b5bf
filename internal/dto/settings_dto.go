package dto

type SettingsRequest struct {
	BusinessName    string `json:"business_name"    validate:"required"`
	BusinessAddress string `json:"business_address" validate:"required"`
	BusinessPhone   string `json:"business_phone"   validate:"required"`
}

type SettingsResponse struct {
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
	UpdatedAt       string `json:"updated_at"`
}
