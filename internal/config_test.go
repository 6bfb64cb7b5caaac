package internal

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://kestrel@localhost/kestrel")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, uint16(3000), cfg.Port)
	assert.Equal(t, "inr", cfg.Currency)
	assert.Equal(t, int32(0), cfg.PriceRoundPlaces)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.False(t, cfg.Stripe.Enabled())
	assert.Empty(t, cfg.RedisURL)
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "database url required",
			env:     map[string]string{"DATABASE_URL": ""},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "production rejects default secret",
			env:     map[string]string{"ENV": "prod"},
			wantErr: "JWT_SECRET must be set",
		},
		{
			name:    "short secret",
			env:     map[string]string{"JWT_SECRET": "short"},
			wantErr: "at least 32",
		},
		{
			name:    "rounding places out of range",
			env:     map[string]string{"PRICE_ROUND_PLACES": "9"},
			wantErr: "PRICE_ROUND_PLACES",
		},
		{
			name: "production stripe needs webhook secret",
			env: map[string]string{
				"ENV":               "prod",
				"JWT_SECRET":        "a-production-secret-that-is-long-enough",
				"STRIPE_SECRET_KEY": "sk_live_x",
			},
			wantErr: "STRIPE_WEBHOOK_SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://kestrel@localhost/kestrel")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewConfig_NormalizesSoftSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://kestrel@localhost/kestrel")
	t.Setenv("ENV", "staging")
	t.Setenv("JWT_SECRET", "a-production-secret-that-is-long-enough")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("CURRENCY", "INR")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, ,https://admin.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "inr", cfg.Currency)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestNewLogger_ProdIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", "info")
	logger.Info("order created", "order_id", "abc")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order created", line["msg"])
	assert.Equal(t, "abc", line["order_id"])

	_, err := time.Parse(time.RFC3339Nano, line["time"].(string))
	assert.NoError(t, err)
}
