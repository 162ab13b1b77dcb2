package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Context keys set by the middleware.
const (
	ContextUser      = "user"
	ContextRequestID = "request_id"
)

const HeaderRequestID = "X-Request-ID"
