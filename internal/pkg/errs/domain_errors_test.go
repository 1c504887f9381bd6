//go:build unit

package errs_test

import (
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestSentinelClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "invalid input", err: errs.InvalidInputf("empty guest id"), sentinel: errs.ErrInvalidInput},
		{name: "not found", err: errs.NotFoundf("no such room"), sentinel: errs.ErrNotFound},
		{name: "already exists", err: errs.AlreadyExistsf("guest already stored"), sentinel: errs.ErrAlreadyExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errs.Is(tc.err, tc.sentinel))

			for _, other := range []error{errs.ErrInvalidInput, errs.ErrNotFound, errs.ErrAlreadyExists} {
				if other == tc.sentinel {
					continue
				}
				assert.False(t, errs.Is(tc.err, other), "must match exactly one sentinel")
			}
		})
	}
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	err := errs.Wrap(errs.NotFoundf("no such room"), "failed to verify room")
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestSentinelDoesNotLeakIntoMessage(t *testing.T) {
	err := errs.InvalidInputf("cannot register guest info with empty id")
	assert.Equal(t, "cannot register guest info with empty id", err.Error())
}
