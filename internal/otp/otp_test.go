package otp

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func TestNewGenerator(t *testing.T) {
	dev, err := NewGenerator("development").Generate()
	require.NoError(t, err)
	assert.Equal(t, DevelopmentCode, dev)

	prod := NewGenerator(ModeProduction)
	seen := make(map[string]struct{})
	for range 50 {
		code, err := prod.Generate()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "production codes must not be constant")
}

func TestGate_Verify(t *testing.T) {
	ctx := context.Background()
	cfg := config.OTP{Mode: "development", MaxAttempts: 3, AttemptWindow: time.Minute}

	testCases := []struct {
		name      string
		issued    string
		submitted []string
		wantErr   error
	}{
		{name: "exact match", issued: "123456", submitted: []string{"123456"}},
		{name: "mismatch", issued: "123456", submitted: []string{"654321"}, wantErr: entities.ErrInvalidOTP},
		{name: "no code issued", issued: "", submitted: []string{""}, wantErr: entities.ErrInvalidOTP},
		{name: "prefix is not a match", issued: "123456", submitted: []string{"12345"}, wantErr: entities.ErrInvalidOTP},
		{
			name:      "correct code after limit is rejected",
			issued:    "123456",
			submitted: []string{"000000", "000001", "000002", "123456"},
			wantErr:   entities.ErrOTPAttemptsExceeded,
		},
		{
			name:      "correct code within limit",
			issued:    "123456",
			submitted: []string{"000000", "000001", "123456"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gate := NewGate(NewGenerator(cfg.Mode), NewMemoryStore(), cfg)

			var err error
			for _, code := range tc.submitted {
				err = gate.Verify(ctx, "ORD-1", tc.issued, code)
			}

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGate_Clear(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(NewGenerator("development"), NewMemoryStore(), config.OTP{MaxAttempts: 1, AttemptWindow: time.Minute})

	assert.ErrorIs(t, gate.Verify(ctx, "ORD-1", "123456", "1"), entities.ErrInvalidOTP)
	assert.ErrorIs(t, gate.Verify(ctx, "ORD-1", "123456", "123456"), entities.ErrOTPAttemptsExceeded)

	require.NoError(t, gate.Clear(ctx, "ORD-1"))
	assert.NoError(t, gate.Verify(ctx, "ORD-1", "123456", "123456"))
}

// slowStore задерживает каждую попытку, чтобы параллельные запросы пересекались.
type slowStore struct {
	AttemptStore
	delay time.Duration
}

func (s slowStore) Attempt(ctx context.Context, orderID string, window time.Duration) (int, error) {
	time.Sleep(s.delay)
	return s.AttemptStore.Attempt(ctx, orderID, window)
}

func TestGate_VerifyConcurrent(t *testing.T) {
	ctx := context.Background()
	cfg := config.OTP{MaxAttempts: 5, AttemptWindow: time.Minute}
	gate := NewGate(NewGenerator("development"), slowStore{AttemptStore: NewMemoryStore(), delay: 5 * time.Millisecond}, cfg)

	var (
		wg       sync.WaitGroup
		compared atomic.Int32
		exceeded atomic.Int32
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := gate.Verify(ctx, "ORD-1", "123456", "000000")
			switch {
			case errors.Is(err, entities.ErrOTPAttemptsExceeded):
				exceeded.Add(1)
			case errors.Is(err, entities.ErrInvalidOTP):
				compared.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), compared.Load())
	assert.Equal(t, int32(95), exceeded.Load())
	assert.ErrorIs(t, gate.Verify(ctx, "ORD-1", "123456", "123456"), entities.ErrOTPAttemptsExceeded)
}

func TestMemoryStore_Window(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	n, err := store.Attempt(ctx, "ORD-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, _ = store.Attempt(ctx, "ORD-1", time.Minute)
	assert.Equal(t, 2, n)

	now = now.Add(2 * time.Minute)
	n, _ = store.Attempt(ctx, "ORD-1", time.Minute)
	assert.Equal(t, 1, n)

	require.NoError(t, store.Reset(ctx, "ORD-1"))
	n, _ = store.Attempt(ctx, "ORD-1", time.Minute)
	assert.Equal(t, 1, n)
}
