package response

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type HealthcheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
