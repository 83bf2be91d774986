package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrGenerationFailed   = errors.New("trip option generation failed")
	ErrSessionNotFound    = errors.New("planning session not found")
	ErrOptionNotFound     = errors.New("option not found in generated set")
	ErrStageIncomplete    = errors.New("current stage selection missing")
	ErrSelectionFinalized = errors.New("selection already finalized")
	ErrSelectionMissing   = errors.New("no finalized selection to book")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDatabaseError      = errors.New("database error")
)
