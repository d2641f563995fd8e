package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port == "" {
		t.Error("server port must have a default")
	}
	if cfg.Storage.MaxFileSize <= 0 {
		t.Errorf("max file size = %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Gemini.Model == "" {
		t.Error("gemini model must have a default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "resumes")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("API_KEY", "secret")

	cfg := Load()

	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if cfg.Storage.MaxFileSize != 1048576 {
		t.Errorf("max file size = %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Security.APIKey != "secret" {
		t.Errorf("api key = %q", cfg.Security.APIKey)
	}

	dsn := cfg.GetDatabaseDSN()
	want := "host=db.internal"
	if len(dsn) < len(want) || dsn[:len(want)] != want {
		t.Errorf("dsn = %q", dsn)
	}
}

func TestGetEnvAsInt64IgnoresGarbage(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	if got := getEnvAsInt64("MAX_FILE_SIZE", 42); got != 42 {
		t.Errorf("got %d, want default", got)
	}
}
