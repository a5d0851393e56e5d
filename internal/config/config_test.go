package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.MigrationsDir != "" {
		t.Fatalf("expected embedded migrations by default, got dir %q", cfg.MigrationsDir)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`port: "9090"
db_path: /tmp/pomobar-test.db
tick_interval: 250ms
control_password: from-file
cors_origins:
  - http://example.test
chime: false
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("TOKEN_TTL_HOURS", "1")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("env must override file, got port %s", cfg.Port)
	}
	if cfg.DBPath != "/tmp/pomobar-test.db" || cfg.ControlPassword != "from-file" {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %v", cfg.TickInterval)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", cfg.TokenTTL)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.Chime {
		t.Fatal("expected chime disabled from file")
	}
}

func TestLoadKeepsFileDurationsWithoutEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "durations.yaml")
	if err := os.WriteFile(path, []byte("token_ttl: 30m\ntick_interval: 1500us\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("TICK_INTERVAL_MS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl from file, got %v", cfg.TokenTTL)
	}
	if cfg.TickInterval != 1500*time.Microsecond {
		t.Fatalf("expected 1.5ms tick from file, got %v", cfg.TickInterval)
	}

	t.Setenv("TICK_INTERVAL_MS", "200")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TickInterval != 200*time.Millisecond || cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected only tick overridden, got tick=%v ttl=%v", cfg.TickInterval, cfg.TokenTTL)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PATH=/tmp/from-dotenv.db\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	chdir(t, dir)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_PATH", "")
	os.Unsetenv("DB_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/from-dotenv.db" {
		t.Fatalf("expected .env value, got %s", cfg.DBPath)
	}
	os.Unsetenv("DB_PATH")
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("POMOBAR_TEST_INT", "nope")
	t.Setenv("POMOBAR_TEST_BOOL", "maybe")

	if got := getEnvDuration("POMOBAR_TEST_INT", time.Second, 7*time.Second); got != 7*time.Second {
		t.Fatalf("expected fallback 7s, got %v", got)
	}
	if got := getEnvBool("POMOBAR_TEST_BOOL", true); !got {
		t.Fatal("expected fallback true")
	}
	if got := getEnvList("POMOBAR_TEST_MISSING", []string{"x"}); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("unexpected list fallback %v", got)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
