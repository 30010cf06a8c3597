package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("PORT", "9876")
	t.Setenv("ENV", "")
	t.Setenv("JWT_SIGNING_KEY", base64.StdEncoding.EncodeToString([]byte("jwt-secret")))
	t.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")))
	t.Setenv("SITE_HOST", "")
	t.Setenv("JOBS_PER_PAGE", "")
	t.Setenv("AUTH_LATENCY_MS", "")
	t.Setenv("VERIFY_LATENCY_MS", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("AVAILABLE_SALARY_BANDS", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9876", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []byte("jwt-secret"), cfg.JwtSigningKey)
	assert.Equal(t, 10, cfg.JobsPerPage)
	assert.Equal(t, time.Second, cfg.AuthLatency)
	assert.Equal(t, 1500*time.Millisecond, cfg.VerifyLatency)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "http://localhost:9876/job/x", cfg.SiteURL("/job/x"))
	assert.NotEmpty(t, cfg.AvailableSalaryBands)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "PROD")
	t.Setenv("SITE_HOST", "jobmoz.co.mz")
	t.Setenv("AUTH_LATENCY_MS", "0")
	t.Setenv("AVAILABLE_SALARY_BANDS", "50000, 100000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, time.Duration(0), cfg.AuthLatency)
	assert.Equal(t, []int{50000, 100000}, cfg.AvailableSalaryBands)
	assert.Equal(t, "https://jobmoz.co.mz/rss", cfg.SiteURL("rss"))
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", ""},
		{"JWT_SIGNING_KEY", ""},
		{"JWT_SIGNING_KEY", "%%%"},
		{"SESSION_KEY", ""},
		{"ENV", "staging"},
		{"JOBS_PER_PAGE", "ten"},
		{"VERIFY_LATENCY_MS", "-1"},
		{"AVAILABLE_SALARY_BANDS", "10,abc"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
