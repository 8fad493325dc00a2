package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound  ErrorCode = "JOB_NOT_FOUND"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"
	CodeAlreadyApplied        ErrorCode = "ALREADY_APPLIED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
