package db

import "errors"

// Domain-level database error sentinels.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Query errors
	ErrQueryNotFound = errors.New("query not found")

	// Literature errors
	ErrLiteratureNotFound = errors.New("literature record not found")
)
