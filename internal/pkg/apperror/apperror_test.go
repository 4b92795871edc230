package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailsKeepsSentinel(t *testing.T) {
	sentinel := New(http.StatusConflict, "slot already booked")

	err := sentinel.WithDetails("court 3 is taken at 10:00", "try another slot")

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, "court 3 is taken at 10:00", err.Error())
	assert.Equal(t, []string{"try another slot"}, err.Details)
	assert.Equal(t, http.StatusConflict, err.Code)
}

func TestWithDetailsFallsBackToSentinelMessage(t *testing.T) {
	sentinel := New(http.StatusBadRequest, "request rejected")

	err := sentinel.WithDetails("")

	assert.Equal(t, "request rejected", err.Error())
}

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", New(http.StatusBadGateway, "unreachable"))

	assert.Equal(t, http.StatusBadGateway, StatusOf(wrapped, http.StatusInternalServerError))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom"), http.StatusInternalServerError))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrap(cause, http.StatusBadGateway, "failed to load court")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "failed to load court", err.Error())
	assert.Equal(t, http.StatusBadGateway, StatusOf(fmt.Errorf("view: %w", err), 0))
}
