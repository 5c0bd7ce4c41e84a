// Package apierror classifies failures of Bungie.net calls.
package apierror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindUserNotFound
	KindClanNotFound
	KindCharacterNotFound
	KindActivityNotFound
	KindItemNotFound
	KindMembershipNotFound
	KindMembershipTypeError
	KindRateLimited
	KindUpstreamUnavailable
	KindInvalidArgument
	KindInvalidPayload
	KindBadRequest
	KindInternalServerError
	KindHTTPError
	KindCancelled
	KindIOError
)

var kindNames = map[Kind]string{
	KindUnknown:             "Unknown",
	KindUnauthorized:        "Unauthorized",
	KindForbidden:           "Forbidden",
	KindNotFound:            "NotFound",
	KindUserNotFound:        "UserNotFound",
	KindClanNotFound:        "ClanNotFound",
	KindCharacterNotFound:   "CharacterNotFound",
	KindActivityNotFound:    "ActivityNotFound",
	KindItemNotFound:        "ItemNotFound",
	KindMembershipNotFound:  "MembershipNotFound",
	KindMembershipTypeError: "MembershipTypeError",
	KindRateLimited:         "RateLimited",
	KindUpstreamUnavailable: "UpstreamUnavailable",
	KindInvalidArgument:     "InvalidArgument",
	KindInvalidPayload:      "InvalidPayload",
	KindBadRequest:          "BadRequest",
	KindInternalServerError: "InternalServerError",
	KindHTTPError:           "HttpError",
	KindCancelled:           "Cancelled",
	KindIOError:             "IOError",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsNotFound reports whether k is NotFound or one of its refinements.
func (k Kind) IsNotFound() bool {
	switch k {
	case KindNotFound, KindUserNotFound, KindClanNotFound, KindCharacterNotFound,
		KindActivityNotFound, KindItemNotFound, KindMembershipNotFound:
		return true
	}
	return false
}

// Error is the single error type surfaced by the client. Envelope fields are
// copied verbatim from the upstream response when one was received.
type Error struct {
	Kind            Kind
	HTTPStatus      int
	Code            int
	Status          string
	Message         string
	MessageData     map[string]string
	ThrottleSeconds int

	// Path and Raw are only filled in when the client traces requests.
	Path string
	Raw  []byte

	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	s := e.Kind.String()
	if e.HTTPStatus != 0 {
		s += fmt.Sprintf(": http %d", e.HTTPStatus)
	}
	if e.Status != "" {
		s += fmt.Sprintf(": %s (%d)", e.Status, e.Code)
	}
	if msg != "" {
		s += ": " + msg
	}
	if e.Path != "" {
		s += " [" + e.Path + "]"
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel errors of this package by kind. The NotFound
// sentinel also matches every refined not-found kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || !t.sentinel() {
		return false
	}
	if t.Kind == KindNotFound {
		return e.Kind.IsNotFound()
	}
	return e.Kind == t.Kind
}

func (e *Error) sentinel() bool {
	return e.HTTPStatus == 0 && e.Code == 0 && e.Status == "" && e.Message == "" && e.Err == nil
}

var (
	ErrUnauthorized        = &Error{Kind: KindUnauthorized}
	ErrForbidden           = &Error{Kind: KindForbidden}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrUserNotFound        = &Error{Kind: KindUserNotFound}
	ErrClanNotFound        = &Error{Kind: KindClanNotFound}
	ErrCharacterNotFound   = &Error{Kind: KindCharacterNotFound}
	ErrActivityNotFound    = &Error{Kind: KindActivityNotFound}
	ErrItemNotFound        = &Error{Kind: KindItemNotFound}
	ErrMembershipNotFound  = &Error{Kind: KindMembershipNotFound}
	ErrMembershipType      = &Error{Kind: KindMembershipTypeError}
	ErrRateLimited         = &Error{Kind: KindRateLimited}
	ErrUpstreamUnavailable = &Error{Kind: KindUpstreamUnavailable}
	ErrInvalidArgument     = &Error{Kind: KindInvalidArgument}
	ErrInvalidPayload      = &Error{Kind: KindInvalidPayload}
	ErrBadRequest          = &Error{Kind: KindBadRequest}
	ErrInternalServerError = &Error{Kind: KindInternalServerError}
	ErrHTTP                = &Error{Kind: KindHTTPError}
	ErrCancelled           = &Error{Kind: KindCancelled}
	ErrIO                  = &Error{Kind: KindIOError}
)

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func InvalidPayload(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidPayload, Message: fmt.Sprintf(format, args...), Err: err}
}

func Cancelled(err error) *Error {
	return &Error{Kind: KindCancelled, Err: err}
}

func IO(err error) *Error {
	return &Error{Kind: KindIOError, Err: err}
}
