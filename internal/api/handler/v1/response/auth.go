package response

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type VerifyResponse struct {
	Authenticated bool `json:"authenticated"`
}
