// Package apperror carries the four failure kinds the ledger surfaces to callers.
// Every usecase error that crosses a package boundary should be an *AppError.
package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Failure kinds. Handlers map them onto gRPC codes in GRPCCode.
const (
	// CodeNotFound: the product or sale named by the request does not exist.
	CodeNotFound = "NOT_FOUND"
	// CodeInvalidArgument: a quantity, cost, amount or required field was
	// rejected and nothing was persisted.
	CodeInvalidArgument = "INVALID_ARGUMENT"
	// CodeConflict: the store refused a write on referential grounds, e.g.
	// deleting a product that has sale lines.
	CodeConflict = "CONFLICT"
	// CodeStoreFailure: SQLite failed. The transaction was rolled back.
	CodeStoreFailure = "STORE_FAILURE"
)

// AppError is what usecases return. Only Code and Message reach the client.
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"` // e.g. line number, product_id
	Err     error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message + " (" + e.Code + ")"
	}
	return fmt.Sprintf("%s (%s): %v", e.Message, e.Code, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail records a key for the logs; it is not sent over gRPC.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = map[string]any{key: value}
		return e
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the driver error behind a Conflict or StoreFailure.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

func NewInvalidArgument(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}

func NewConflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewStoreFailure hides the driver error from the message but keeps it as the cause.
func NewStoreFailure(err error) *AppError {
	return &AppError{
		Code:    CodeStoreFailure,
		Message: "storage failure",
		Err:     err,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool        { return hasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }
func IsConflict(err error) bool        { return hasCode(err, CodeConflict) }
func IsStoreFailure(err error) bool    { return hasCode(err, CodeStoreFailure) }

// GRPCCode maps any error onto a status code. Unknown errors are Internal.
func GRPCCode(err error) codes.Code {
	appErr, ok := AsAppError(err)
	if !ok {
		return codes.Internal
	}
	switch appErr.Code {
	case CodeNotFound:
		return codes.NotFound
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeConflict:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// Wrap passes AppErrors through untouched and turns anything else into a store failure.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}
	return NewStoreFailure(err)
}

// Message is the client-safe text for err.
func Message(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return "internal error"
}

// GRPCStatus converts err into a status error for handlers to return.
func GRPCStatus(err error) error {
	return status.Error(GRPCCode(err), Message(err))
}
