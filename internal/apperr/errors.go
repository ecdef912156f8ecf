package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindValidation errors are caught before any network call.
	KindValidation Kind = iota + 1
	// KindServer errors carry a message reported by the API.
	KindServer
	// KindTransport covers network failures, unreadable bodies and the like.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("%s error: status %d", e.Kind, e.Status)
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Server(status int, message string) *Error {
	return &Error{Kind: KindServer, Status: status, Message: message}
}

func Transport(cause error) *Error {
	return &Error{Kind: KindTransport, Cause: cause}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// UserMessage returns the text shown to the user for err. Validation
// messages and server-reported messages are shown verbatim, as is any
// message fixed by Resolved; everything else collapses to fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return fallback
	}
	if e.Message == "" {
		return fallback
	}
	return e.Message
}

// Resolved wraps err with the text the user should see, keeping its kind.
func Resolved(err error, message string) *Error {
	out := &Error{Kind: KindTransport, Message: message, Cause: err}
	var e *Error
	if errors.As(err, &e) {
		out.Kind = e.Kind
		out.Status = e.Status
	}
	return out
}

// Declined reports whether err is a 2xx reply that carried success:false.
func Declined(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServer && e.Status >= 200 && e.Status < 300
}

// StepMessage picks the user text for a failed step call: declined replies
// fall back to declined, everything else to failed.
func StepMessage(err error, declined, failed string) string {
	if Declined(err) {
		return UserMessage(err, declined)
	}
	return UserMessage(err, failed)
}
