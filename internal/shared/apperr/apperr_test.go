package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidErr("bad", nil), http.StatusBadRequest},
		{NotFoundErr("gone"), http.StatusNotFound},
		{UnauthorizedErr("who"), http.StatusUnauthorized},
		{ForbiddenErr("no"), http.StatusForbidden},
		{ConflictErr("dup"), http.StatusConflict},
		{Wrap(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestWrapKeepsAppError(t *testing.T) {
	nf := NotFoundErr("Product not found.")
	wrapped := fmt.Errorf("lookup: %w", nf)

	got := Wrap(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, NotFound, got.Kind)
	assert.Equal(t, "Product not found.", PublicMessage(wrapped))
	assert.Nil(t, Wrap(nil))
}

func TestPublicMessageHidesInternalErrors(t *testing.T) {
	err := Wrap(errors.New("s3: access denied"))
	assert.Equal(t, defaultPublicMsg, PublicMessage(err))
	assert.ErrorContains(t, err, "s3: access denied")
}
