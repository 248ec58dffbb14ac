package dto

// FunctionResponse is the envelope every POST /functions/* endpoint returns.
// Business failures ride inside the envelope with Success false and an HTTP
// 200, so frontend callers only branch on the payload.
type FunctionResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func FunctionSuccess(data any) FunctionResponse {
	return FunctionResponse{Success: true, Data: data}
}

func FunctionFailure(message string) FunctionResponse {
	return FunctionResponse{Success: false, Error: message}
}
