package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
	"github.com/stretchr/testify/assert"
)

var fastRetry = utils.RetryConfig{InitialDelay: time.Millisecond, MaxAttempts: 3, Multiplier: 2}

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errPermanent := errors.New("permanent")

	testCases := []struct {
		name      string
		results   []error
		wantErr   error
		wantCalls int
	}{
		{name: "first attempt succeeds", results: []error{nil}, wantCalls: 1},
		{name: "succeeds after failures", results: []error{errTemporary, errTemporary, nil}, wantCalls: 3},
		{name: "gives up after max attempts", results: []error{errTemporary, errTemporary, errTemporary}, wantErr: errTemporary, wantCalls: 3},
		{name: "permanent error is not retried", results: []error{errPermanent}, wantErr: errPermanent, wantCalls: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), fastRetry, func() error {
				err := tc.results[calls]
				calls++
				return err
			}, errPermanent)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{InitialDelay: time.Hour, MaxAttempts: 5}, func() error {
		calls++
		return errors.New("db down")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
