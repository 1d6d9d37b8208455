package utils

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "connection refused" }
func (fakeNetError) Timeout() bool   { return false }
func (fakeNetError) Temporary() bool { return true }

var _ net.Error = fakeNetError{}

func TestClassifyStoreErrorConnectivity(t *testing.T) {
	err := ClassifyStoreError("Erreur lors du chargement", fakeNetError{})
	assert.Equal(t, KindConnectivity, err.Kind)
	assert.Equal(t, "Erreur de connexion. Vérifiez votre internet.", err.Message)

	err = ClassifyStoreError("Erreur lors du chargement", context.DeadlineExceeded)
	assert.Equal(t, KindConnectivity, err.Kind)
}

func TestClassifyStoreErrorDefaultsToInternal(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := ClassifyStoreError("Erreur lors de l'enregistrement", cause)
	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, "Erreur lors de l'enregistrement", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestClassifyStoreErrorPreservesAppError(t *testing.T) {
	original := NotFoundError("Introuvable")
	err := ClassifyStoreError("Erreur", original)
	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "Introuvable", err.Message)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ValidationError("msg", nil)))
	assert.Equal(t, KindAccessDenied, KindOf(AccessDeniedError("msg")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ValidationError("msg", nil)))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(AccessDeniedError("msg")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundError("msg")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&AppError{Kind: KindConnectivity}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: errors.New("timeout"), Net: "tcp"}
	err := InternalError("msg", cause)

	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr))
}
