package dto

// Response is the envelope every endpoint returns.
// Status is "success" for 2xx, "fail" for client-caused errors (4xx) and
// "error" for server-caused errors (5xx).
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)
