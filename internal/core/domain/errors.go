package domain

import (
	"context"
	"errors"
	"strings"
)

type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindAuth       ErrorKind = "auth"
	KindServer     ErrorKind = "server"
	KindNotFound   ErrorKind = "not_found"
	KindValidation ErrorKind = "validation"
	KindUnknown    ErrorKind = "unknown"
)

var (
	ErrEmptySelection    = errors.New("at least one seat must be selected")
	ErrTooManySeats      = errors.New("at most 4 seats can be selected")
	ErrNoSeatsAvailable  = errors.New("no seats available for this event")
	ErrSeatsNotBlocked   = errors.New("not all seats could be blocked")
	ErrHoldExpired       = errors.New("seat hold has expired")
	ErrOperationInFlight = errors.New("operation already in progress")
	ErrIncompleteNames   = errors.New("first and last name are required for every seat")
	ErrNotAuthenticated  = errors.New("not authenticated")
)

var defaultMessages = map[ErrorKind]string{
	KindNetwork:  "Connection error. Check your internet connection",
	KindAuth:     "Session expired",
	KindServer:   "Server error. Try again later",
	KindNotFound: "Resource not found",
	KindUnknown:  "Unknown error",
}

// AppError is what the selection flow shows to the user. Err keeps the cause
// so errors.Is works against the sentinels above.
type AppError struct {
	Kind    ErrorKind
	Message string
	Op      string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Op != "" {
		return e.Op + ": " + e.Message
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string, cause error) *AppError {
	if message == "" {
		message = defaultMessages[kind]
	}

	return &AppError{Kind: kind, Message: message, Err: cause}
}

func Validation(cause error) *AppError {
	return &AppError{Kind: KindValidation, Message: cause.Error(), Err: cause}
}

func ValidationMessage(message string) *AppError {
	if message == "" {
		return Validation(ErrSeatsNotBlocked)
	}

	return &AppError{Kind: KindValidation, Message: message, Err: ErrSeatsNotBlocked}
}

// WithOp returns a copy of e tagged with the operation that failed.
func (e *AppError) WithOp(op string) *AppError {
	cp := *e
	cp.Op = op
	return &cp
}

func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// AsAppError converts any error into the taxonomy. Errors that are already
// classified pass through; others are classified by their message.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(KindNetwork, "", err)
	case errors.Is(err, ErrNotAuthenticated):
		return NewError(KindAuth, "", err)
	case errors.Is(err, ErrEmptySelection), errors.Is(err, ErrTooManySeats),
		errors.Is(err, ErrNoSeatsAvailable), errors.Is(err, ErrSeatsNotBlocked),
		errors.Is(err, ErrHoldExpired), errors.Is(err, ErrIncompleteNames),
		errors.Is(err, ErrOperationInFlight):
		return Validation(err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401"):
		return NewError(KindAuth, "Session expired", err)
	case strings.Contains(msg, "403"):
		return NewError(KindAuth, "Access denied", err)
	case strings.Contains(msg, "404"):
		return NewError(KindNotFound, "", err)
	case strings.Contains(msg, "500"):
		return NewError(KindServer, "", err)
	case strings.Contains(msg, "network"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "internet"),
		strings.Contains(msg, "timeout"):
		return NewError(KindNetwork, "", err)
	}

	return NewError(KindUnknown, err.Error(), err)
}
