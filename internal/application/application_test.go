package application

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/calorico/maxcalorie/internal/config"
	"go.uber.org/zap/zaptest"
)

const sampleDatabase = `description^weight_ounces^calories
refried spicy beans^12^350
Idaho bread^3^210
`

func writeSampleCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "food.csv")
	if err := os.WriteFile(path, []byte(sampleDatabase), 0o600); err != nil {
		t.Fatalf("write sample catalog: %v", err)
	}
	return path
}

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	cfg.CatalogPath = writeSampleCatalog(t)
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	items, err := app.store.Items()
	if err != nil {
		t.Fatalf("Items returned error: %v", err)
	}
	if len(items) != 2 || items[0].Description != "refried spicy beans" {
		t.Fatalf("unexpected catalog contents: %+v", items)
	}
	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewWithoutCatalogPathStartsEmpty(t *testing.T) {
	cfg := baseTestConfig(":8086")

	app, err := New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	items, err := app.store.Items()
	if err != nil {
		t.Fatalf("Items returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty catalog, got %d items", len(items))
	}
}

func TestNewFailsOnMissingCatalogFile(t *testing.T) {
	cfg := baseTestConfig(":8087")
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.csv")

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}

func TestNewFailsOnMalformedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food.csv")
	malformed := "header\ncorn^10^20\nbroken row without carets\n"
	if err := os.WriteFile(path, []byte(malformed), 0o600); err != nil {
		t.Fatalf("write malformed catalog: %v", err)
	}

	cfg := baseTestConfig(":8088")
	cfg.CatalogPath = path

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for malformed catalog")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
