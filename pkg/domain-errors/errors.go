// Package domainerrors provides coded errors for the registry domain.
//
// Services return these so transports can map failures to responses without
// inspecting error strings. Stores return sentinel errors (pkg/platform/sentinel)
// and services translate them into coded errors at the boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// Registry lifecycle failures.
	CodeAlreadyExists     Code = "already_exists"
	CodeNotFound          Code = "not_found"
	CodeNotOwner          Code = "not_owner"
	CodeTransferFailed    Code = "transfer_failed"
	CodeBelowMinimum      Code = "below_minimum"
	CodeLocked            Code = "locked"
	CodeAlreadyChallenged Code = "already_challenged"
	CodeNoChallenge       Code = "no_challenge"
	CodeChallengeActive   Code = "challenge_active"
	CodeInsufficientFunds Code = "insufficient_funds"

	// Challenge module failures.
	CodePollNotEnded   Code = "poll_not_ended"
	CodeNotClosed      Code = "not_closed"
	CodeAlreadyClosed  Code = "already_closed"
	CodeAlreadyClaimed Code = "already_claimed"
	CodeUnresolvable   Code = "unresolvable"

	// Construction / input failures.
	CodeInvalidParameter Code = "invalid_parameter"
	CodeInvalidToken     Code = "invalid_token"
	CodeInvalidInput     Code = "invalid_input"
	CodeBadRequest       Code = "bad_request"

	// Transport / infrastructure failures.
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal_error"
)

// Error is a coded domain error. Message is safe to surface to callers for
// non-internal codes; Err carries the underlying cause, if any.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. A nil err returns
// nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
