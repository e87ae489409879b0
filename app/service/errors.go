package service

import "errors"

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindGateway
	KindPaymentNotCompleted
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindGateway:
		return "gateway"
	case KindPaymentNotCompleted:
		return "payment_not_completed"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// DefaultErrorMessage is the redacted message shown to clients when an error
// carries no message of its own.
const DefaultErrorMessage = "Произошла ошибка"

// Error tags a failure with a kind so callers can branch on it instead of
// matching message text. Message is the client-facing text; Err, when set,
// carries the underlying cause for logs and the operator channel.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func KindOf(err error) ErrorKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// ClientMessage resolves the message for the uniform error envelope.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return DefaultErrorMessage
}
