package apperrors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMapToStatuses(t *testing.T) {
	cases := []struct {
		err    *Error
		kind   Kind
		status int
	}{
		{Unauthenticated("x"), KindUnauthenticated, http.StatusUnauthorized},
		{Forbidden("x"), KindForbidden, http.StatusForbidden},
		{NotFound("x"), KindNotFound, http.StatusNotFound},
		{InvalidInput("x"), KindInvalidInput, http.StatusBadRequest},
		{Conflict("x"), KindConflict, http.StatusConflict},
		{QuotaExceeded("x"), KindQuotaExceeded, http.StatusTooManyRequests},
		{Internal("x"), KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestWithDetailsDoesNotMutateOriginal(t *testing.T) {
	base := Forbidden("feature not available on your plan")
	detailed := base.WithDetails("feature: csv-export")

	assert.Empty(t, base.Details)
	assert.Equal(t, "feature: csv-export", detailed.Details)
	assert.Contains(t, detailed.Error(), "csv-export")

	body := detailed.Body()
	assert.Equal(t, "feature not available on your plan", body["error"])
	assert.Equal(t, "feature: csv-export", body["details"])
}
