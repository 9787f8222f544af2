package errors

// ErrorCode identifies an application error category in API responses and logs.
type ErrorCode string

const (
	ErrorCode_HTTP_OK          ErrorCode = "OK"
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD  ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS   ErrorCode = "ALREADY_EXISTS"
	ErrorCode_CONFLICT         ErrorCode = "CONFLICT"

	ErrorCode_CLIENT_NOT_FOUND         ErrorCode = "CLIENT_NOT_FOUND"
	ErrorCode_CLIENT_ALREADY_PROCESSED ErrorCode = "CLIENT_ALREADY_PROCESSED"
	ErrorCode_INVALID_DIMENSION        ErrorCode = "INVALID_DIMENSION"

	ErrorCode_CSV_IMPORT_FAILED ErrorCode = "CSV_IMPORT_FAILED"
	ErrorCode_CSV_INVALID_FILE  ErrorCode = "CSV_INVALID_FILE"

	ErrorCode_AI_CATEGORIZATION_FAILED ErrorCode = "AI_CATEGORIZATION_FAILED"
	ErrorCode_AI_SERVICE_UNAVAILABLE   ErrorCode = "AI_SERVICE_UNAVAILABLE"

	ErrorCode_DB_QUERY_FAILED       ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_DB_CONNECTION_FAILED  ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_INTEGRATION_STORAGE   ErrorCode = "INTEGRATION_STORAGE_FAILED"
	ErrorCode_INTEGRATION_CACHE     ErrorCode = "INTEGRATION_CACHE_FAILED"
	ErrorCode_INTEGRATION_EXTERNAL  ErrorCode = "INTEGRATION_EXTERNAL_API_FAILED"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string {
	return string(c)
}
