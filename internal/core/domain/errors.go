package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Member errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrMemberInactive = errors.New("member is inactive")
)

// Round validation errors (user-correctable, reported before any write)
var (
	ErrRoundNotFound          = errors.New("round not found")
	ErrRoundDateRequired      = errors.New("round date is required")
	ErrNoAttendees            = errors.New("attendee selection is empty")
	ErrInvalidStrokes         = errors.New("stroke count must be a positive integer")
	ErrScorerNotAttendee      = errors.New("scored member is not an attendee")
	ErrDuplicateScore         = errors.New("member has more than one score in the round")
	ErrAwardWinnerNotAttendee = errors.New("award winner is not an attendee")
	ErrDuplicateAwardWinner   = errors.New("award winner already has an award in this round")
	ErrUnknownAwardType       = errors.New("unknown award type")
)

// Expense errors
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
)
