package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError carries the request id when one was minted so buyers can
// quote it in support tickets.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
