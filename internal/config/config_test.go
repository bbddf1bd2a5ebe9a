package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	t.Setenv(key, "test_value")

	if got := getEnvString(key, "default"); got != "test_value" {
		t.Errorf("getEnvString() = %q, want %q", got, "test_value")
	}
	if got := getEnvString("NON_EXISTENT_KEY", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name   string
		envVal string
		want   time.Duration
	}{
		{"ValidDuration", "1m", time.Minute},
		{"ValidSeconds", "60", 60 * time.Second},
		{"Invalid", "invalid", time.Second},
		{"Empty", "", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)
			if got := getEnvDuration(key, time.Second); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_ENV_FLOAT"

	t.Setenv(key, "12.5")
	if got := getEnvFloat(key, 10); got != 12.5 {
		t.Errorf("getEnvFloat() = %v, want 12.5", got)
	}

	t.Setenv(key, "not-a-number")
	if got := getEnvFloat(key, 10); got != 10 {
		t.Errorf("getEnvFloat() = %v, want default 10", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ELEVEN_API_STATS", "sk-test")
	t.Setenv("ARCHIVE_DB_PATH", filepath.Join(t.TempDir(), "usage.db"))
	t.Setenv("ELEVEN_BASE_URL", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("QUOTA_ALERT_THRESHOLD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "sk-test")
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultHTTPTimeout)
	}
	if cfg.QuotaAlertThreshold != defaultQuotaAlertThreshold {
		t.Errorf("QuotaAlertThreshold = %v, want %v", cfg.QuotaAlertThreshold, defaultQuotaAlertThreshold)
	}
}

func TestRequireAPIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireAPIKey()
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}

	cfg.APIKey = "sk-test"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Errorf("RequireAPIKey() with key set failed: %v", err)
	}
}
