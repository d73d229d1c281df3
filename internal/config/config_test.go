package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "basket")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, int64(50000), conf.Pricing.FreeDeliveryThreshold)
	assert.Equal(t, int64(4000), conf.Pricing.DeliveryFee)
	assert.Equal(t, 5, conf.OTP.MaxAttempts)
	assert.Equal(t, 15*time.Minute, conf.OTP.AttemptWindow)
	assert.Equal(t, time.UTC, conf.Location())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "basket")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("OTP_MODE", "production")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("BUSINESS_TIMEZONE", "Asia/Kolkata")
	t.Setenv("CACHE_TTL", "not-a-duration")

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "production", conf.OTP.Mode)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, "Asia/Kolkata", conf.Location().String())
}

func TestValidate_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing postgres credentials", env: map[string]string{"POSTGRES_USER": ""}},
		{name: "unknown env", env: map[string]string{
			"POSTGRES_USER": "u", "POSTGRES_PASSWORD": "p", "ENV": "dev",
		}},
		{name: "unknown otp mode", env: map[string]string{
			"POSTGRES_USER": "u", "POSTGRES_PASSWORD": "p", "OTP_MODE": "fixed",
		}},
		{name: "zero attempts", env: map[string]string{
			"POSTGRES_USER": "u", "POSTGRES_PASSWORD": "p", "OTP_MAX_ATTEMPTS": "0",
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
