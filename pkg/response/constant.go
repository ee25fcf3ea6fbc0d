package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// TimestampFormat is RFC 3339 with millisecond precision, the resolution
	// every store keeps.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)
