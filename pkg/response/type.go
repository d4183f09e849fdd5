package response

// Resp is the JSON body of every error response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}

// MessageResp is the JSON body of a success response that carries no data.
type MessageResp struct {
	Message string `json:"message"`
}
