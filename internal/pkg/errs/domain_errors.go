package errs

// Cross-cutting sentinel errors shared by the command and handler layers
var (
	// Idempotency errors
	ErrIdempotencyKeyInvalid  = New("invalid idempotency key format")
	ErrIdempotencyConflict    = New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
