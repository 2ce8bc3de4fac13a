package services

import "errors"

// Kind classifies a service failure so the HTTP layer can map it to a
// status code and a user-facing message without inspecting error text.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindAlreadyVoted     Kind = "already_voted"
	KindRejectedContent  Kind = "rejected_content"
	KindConflict         Kind = "conflict"
	KindStoreUnavailable Kind = "store_unavailable"
)

// ServiceError is the single error type every service operation fails with.
type ServiceError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func ErrValidation(msg string) error {
	return &ServiceError{Kind: KindValidation, Message: msg}
}

func ErrNotFound(msg string) error {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

func ErrAlreadyVoted(msg string) error {
	return &ServiceError{Kind: KindAlreadyVoted, Message: msg}
}

func ErrRejectedContent(msg string) error {
	return &ServiceError{Kind: KindRejectedContent, Message: msg}
}

func ErrConflict(msg string) error {
	return &ServiceError{Kind: KindConflict, Message: msg}
}

// ErrStore wraps an infrastructure failure from the persistence layer. The
// services never retry; the boundary decides what to do with the request.
func ErrStore(err error) error {
	return &ServiceError{Kind: KindStoreUnavailable, Message: "storage operation failed", Err: err}
}

// KindOf returns the failure kind of err, or KindStoreUnavailable for
// anything that is not a ServiceError.
func KindOf(err error) Kind {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return KindStoreUnavailable
}
