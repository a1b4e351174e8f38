package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv("PORT", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.CatalogPath != "" {
		t.Fatalf("expected empty default catalog path, got %s", cfg.CatalogPath)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("unexpected rate limit defaults: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_PATH", "/data/food.csv")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "7")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.CatalogPath != "/data/food.csv" {
		t.Fatalf("expected overridden catalog path, got %s", cfg.CatalogPath)
	}
	if cfg.RateLimitRPS != 5.5 || cfg.RateLimitBurst != 7 {
		t.Fatalf("unexpected rate limits: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	yamlContent := `port: "9100"
catalog_path: /srv/food.csv
shutdown_grace_period: 2s
read_header_timeout: 1s
write_timeout: 3s
idle_timeout: 4s
enable_request_logging: true
rate_limit:
  rps: 12
  burst: 24
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9100" || cfg.CatalogPath != "/srv/food.csv" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ShutdownGracePeriod != 2*time.Second || cfg.ReadHeaderTimeout != time.Second {
		t.Fatalf("unexpected timeouts: %+v", cfg)
	}
	if cfg.RateLimitRPS != 12 || cfg.RateLimitBurst != 24 {
		t.Fatalf("unexpected rate limits: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadMissingYAMLFileFails(t *testing.T) {
	clearEnv(t)

	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestCLIOverridesWinOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_PATH", "/env/food.csv")

	port := "9500"
	catalogPath := "/cli/food.csv"
	rps := 3.0
	burst := 6

	cfg, err := Load(&CLIOverrides{
		Port:           &port,
		CatalogPath:    &catalogPath,
		RateLimitRPS:   &rps,
		RateLimitBurst: &burst,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9500" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.CatalogPath != "/cli/food.csv" {
		t.Fatalf("expected CLI catalog path to win, got %s", cfg.CatalogPath)
	}
	if cfg.RateLimitRPS != 3 || cfg.RateLimitBurst != 6 {
		t.Fatalf("unexpected rate limits: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}
