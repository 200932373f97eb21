package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindTypeMismatch, http.StatusInternalServerError},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindValidation, http.StatusUnprocessableEntity},
		{KindBadRequest, http.StatusBadRequest},
		{KindPaymentGateway, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, New(tc.kind, "x").Status())
	}
}

func TestPublicMessageHidesInternalDetail(t *testing.T) {
	err := Wrap(KindInternal, "query failed", errors.New("pq: relation does not exist"))
	assert.Equal(t, "Something Went Wrong Internally", err.PublicMessage())
	assert.Contains(t, err.Error(), "pq: relation does not exist")
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Page not found", NotFound("game 42").PublicMessage())
}

func TestAsUnwrapsChain(t *testing.T) {
	inner := NotFound("missing")
	wrapped := fmt.Errorf("handler: %w", inner)

	got, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, got.Kind)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
