package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindValidation
	KindUnsupportedType
	KindPayloadTooLarge
	KindNotFound
	KindIO
	KindParse
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindValidation:
		return "validation_error"
	case KindUnsupportedType:
		return "unsupported_type"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindNotFound:
		return "not_found"
	case KindIO:
		return "io_error"
	case KindParse:
		return "parse_error"
	case KindUpstream:
		return "upstream_error"
	default:
		return "internal_error"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput, KindValidation, KindUnsupportedType, KindPayloadTooLarge:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a Kind and a client-facing message. Err, if set, is the
// underlying cause and is never shown to clients in release mode.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so callers can use errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrUnsupportedType = &Error{Kind: KindUnsupportedType}
	ErrPayloadTooLarge = &Error{Kind: KindPayloadTooLarge}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrIO              = &Error{Kind: KindIO}
	ErrParse           = &Error{Kind: KindParse}
	ErrUpstream        = &Error{Kind: KindUpstream}
)

func InvalidInput(msg string) error { return &Error{Kind: KindInvalidInput, Msg: msg} }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

func UnsupportedType(msg string) error { return &Error{Kind: KindUnsupportedType, Msg: msg} }

func PayloadTooLarge(msg string) error { return &Error{Kind: KindPayloadTooLarge, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }

func IO(msg string, err error) error { return &Error{Kind: KindIO, Msg: msg, Err: err} }

func Parse(msg string, err error) error { return &Error{Kind: KindParse, Msg: msg, Err: err} }

func Upstream(msg string, err error) error { return &Error{Kind: KindUpstream, Msg: msg, Err: err} }

// KindOf reports the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return "internal server error"
}
