package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		class  Class
		status int
		body   string
	}{
		{CLASS_AUTH, http.StatusForbidden, "Unauthorized"},
		{CLASS_INTERNAL, http.StatusInternalServerError, "Internal Server Error"},
		{CLASS_NOT_FOUND, http.StatusNotFound, "Not Found"},
		{CLASS_BAD_REQUEST, http.StatusBadRequest, "Bad Request"},
	}

	for _, tc := range cases {
		t.Run(string(tc.class), func(t *testing.T) {
			e := New(tc.class, "boom")
			assert.Equal(t, tc.status, e.Status())
			assert.Equal(t, tc.body, e.Body())
		})
	}
}

func TestUnknownClassPanics(t *testing.T) {
	e := &Error{Class: Class("NOPE"), Message: "x"}
	assert.Panics(t, func() { _ = e.Status() })
	assert.Panics(t, func() { _ = e.Body() })
}

func TestCausePreserved(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	e := Internal("ansa api network issue", WithCause(cause))

	require.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "INTERNAL_ERROR")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestLabelsAndAnnotations(t *testing.T) {
	e := Internal("could not fetch customers from ansa",
		WithLabel(LABEL_ANSA_STATUS_CODE, "502"),
		WithAnnotation("path", "/customers"),
	)

	assert.Equal(t, "502", e.Labels[LABEL_ANSA_STATUS_CODE])
	assert.Equal(t, "/customers", e.Annotations["path"])
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	plain := errors.New("whatever")
	wrapped := From(plain)
	assert.Equal(t, CLASS_INTERNAL, wrapped.Class)
	assert.ErrorIs(t, wrapped, plain)

	already := NotFound("could not get merchant keys")
	assert.Same(t, already, From(already))
}

func TestMatches(t *testing.T) {
	e := Auth("no client session found")
	assert.True(t, Matches(e, CLASS_AUTH))
	assert.False(t, Matches(e, CLASS_NOT_FOUND))
	assert.False(t, Matches(errors.New("plain"), CLASS_AUTH))
}
