package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("ROW_STORE", "sqlite")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "8080" || cfg.SessionTTL != 30*time.Minute || cfg.SubmitTimeout != 5*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionStore != SessionStoreMemory || cfg.SheetsRange != "Sheet1" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("ROW_STORE", "sqlite")
	if _, err := Parse(); err == nil {
		t.Fatal("expected error without SESSION_SECRET")
	}
}

func TestValidate(t *testing.T) {
	base := Config{SessionSecret: "x", SessionTTL: time.Minute, SessionStore: SessionStoreMemory}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"sqlite ok", func(c *Config) { c.RowStore = RowStoreSQLite }, ""},
		{"sheets without id", func(c *Config) { c.RowStore = RowStoreSheets }, "SHEETS_SPREADSHEET_ID"},
		{"sheets without creds", func(c *Config) { c.RowStore = RowStoreSheets; c.SheetsSpreadsheetID = "id" }, "GOOGLE_CREDENTIALS"},
		{"sheets ok", func(c *Config) {
			c.RowStore = RowStoreSheets
			c.SheetsSpreadsheetID = "id"
			c.GoogleCredentialsJSON = "{}"
		}, ""},
		{"mysql without db", func(c *Config) { c.RowStore = RowStoreMySQL }, "DB_USER"},
		{"unknown store", func(c *Config) { c.RowStore = "csv" }, "ROW_STORE"},
		{"unknown session store", func(c *Config) { c.RowStore = RowStoreSQLite; c.SessionStore = "file" }, "SESSION_STORE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	c, err := LoadRateLimitConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Capacity != 1 || c.TTL != 10*time.Second {
		t.Fatalf("unexpected clamp: %+v", c)
	}
}

func TestCacheMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	c, err := LoadCacheConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Methods["GET"] || !c.Methods["HEAD"] || c.Methods["POST"] {
		t.Fatalf("methods = %v", c.Methods)
	}
}

func TestRedisAddress(t *testing.T) {
	if got := (RedisConfig{Addr: "a:1"}).Address(); got != "a:1" {
		t.Fatalf("addr = %q", got)
	}
	if got := (RedisConfig{Addr: "a:1", Host: "h", Port: "2"}).Address(); got != "h:2" {
		t.Fatalf("addr = %q", got)
	}
}
