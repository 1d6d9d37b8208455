package utils

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// ErrorKind classifies failures so callers never have to sniff message text.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindAccessDenied ErrorKind = "access_denied"
	KindConnectivity ErrorKind = "connectivity"
	KindNotFound     ErrorKind = "not_found"
	KindInternal     ErrorKind = "internal"
)

// AppError carries a kind alongside a user-facing message and the cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(message string, cause error) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Err: cause}
}

func AccessDeniedError(message string) *AppError {
	return &AppError{Kind: KindAccessDenied, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func InternalError(message string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: cause}
}

// ClassifyStoreError wraps a failed store call into an AppError. Transport-level
// failures become connectivity errors so the caller knows a manual retry may help.
func ClassifyStoreError(message string, err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Kind: KindConnectivity, Message: "Erreur de connexion. Vérifiez votre internet.", Err: err}
	}

	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to a response code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAccessDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConnectivity:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
