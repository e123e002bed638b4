package api

// ErrorCode categorizes an error response without leaking internals.
type ErrorCode string

const (
	// CodeValidation marks malformed input (bad dates, missing fields).
	CodeValidation ErrorCode = "VALIDATION"
	// CodeNotFound marks a missing record.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeUnavailable marks storage failures, transient or fatal.
	CodeUnavailable ErrorCode = "UNAVAILABLE"
	// CodeInternal marks unclassified failures.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorBody carries the error category and a generic message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
