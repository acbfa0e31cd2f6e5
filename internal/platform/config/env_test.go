package config

import "testing"

func TestParseEnvReadsValues(t *testing.T) {
	t.Setenv("BCOMMUNE_TEST_NAME", "workspace")
	t.Setenv("BCOMMUNE_TEST_PORT", "9201")

	var cfg struct {
		Name string `env:"BCOMMUNE_TEST_NAME"`
		Port int    `env:"BCOMMUNE_TEST_PORT"`
	}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Name != "workspace" {
		t.Fatalf("Name = %q, want %q", cfg.Name, "workspace")
	}
	if cfg.Port != 9201 {
		t.Fatalf("Port = %d, want 9201", cfg.Port)
	}
}

func TestParseEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("BCOMMUNE_TEST_COUNT", "not-a-number")

	var cfg struct {
		Count int `env:"BCOMMUNE_TEST_COUNT"`
	}
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected error for malformed int value")
	}
}
