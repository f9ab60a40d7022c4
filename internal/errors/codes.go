package errors

// ErrorCode is a stable, client-facing error identifier
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthInvalidToken       ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Wallet session error codes (WALLET_*)
const (
	WalletSessionNotFound  ErrorCode = "WALLET_001"
	WalletInvalidAction    ErrorCode = "WALLET_002"
	WalletSessionForbidden ErrorCode = "WALLET_003"
	WalletTooManySessions  ErrorCode = "WALLET_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidFilter ErrorCode = "TRANSACTION_001"
	TransactionInvalidType   ErrorCode = "TRANSACTION_002"
	CategoryInvalidID        ErrorCode = "TRANSACTION_003"
	TransactionNotFound      ErrorCode = "TRANSACTION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemNotFound           ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthInvalidToken:       "Authorization token is invalid",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date, expected YYYY-MM-DD",

	WalletSessionNotFound:  "Wallet session not found or expired",
	WalletInvalidAction:    "Invalid filter action",
	WalletSessionForbidden: "Wallet session belongs to another user",
	WalletTooManySessions:  "Too many open wallet sessions",

	TransactionInvalidFilter: "Invalid transaction filter",
	TransactionInvalidType:   "Invalid transaction type",
	CategoryInvalidID:        "Invalid category identifier",
	TransactionNotFound:      "Transaction not found",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemNotFound:           "Resource not found",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
