package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty config should load the defaults: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	cfg, err = DecodeConfig(strings.NewReader("max_depth: 10\nlog_level: debug\nformat_decimals: 4\ncolor: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 10 || cfg.LogLevel != "debug" || cfg.FormatDecimals != 4 || cfg.Color {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.History != DefaultConfig().History {
		t.Errorf("history should keep its default, got %q", cfg.History)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := []string{
		"unknown: 1\n",
		"max_depth: 0\n",
		"max_depth: many\n",
		"format_decimals: -1\n",
		"format_decimals: 101\n",
		"log_level: loud\n",
	}
	for _, source := range cases {
		if _, err := DecodeConfig(strings.NewReader(source)); err == nil {
			t.Errorf("%q should be rejected", source)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numscript.yml")
	if err := os.WriteFile(path, []byte("max_depth: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("expected max_depth 3, got %d", cfg.MaxDepth)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("a missing file should fail")
	}
}
