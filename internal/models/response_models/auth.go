package response_models

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
