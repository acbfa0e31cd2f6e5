package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

func TestParseConfigFromArgsLoadsEnvThenFlags(t *testing.T) {
	t.Setenv("BCOMMUNE_ENTRYPOINT_TEST_PORT", "9000")

	cfg := struct {
		Port int `env:"BCOMMUNE_ENTRYPOINT_TEST_PORT"`
	}{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port")

	if err := ParseConfigFromArgs(&cfg, fs, []string{"-port", "9001"}); err != nil {
		t.Fatalf("parse config from args: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("Port = %d, want flag override 9001", cfg.Port)
	}
}

func TestParseArgsRequiresFlagSet(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

func TestRunWithTelemetryRequiresServiceName(t *testing.T) {
	err := RunWithTelemetry(context.Background(), "  ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for empty service name")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("BCOMMUNE_OTEL_ENDPOINT", "")

	wantErr := errors.New("run failed")
	err := RunWithTelemetry(context.Background(), ServiceWorkspace, func(context.Context) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
