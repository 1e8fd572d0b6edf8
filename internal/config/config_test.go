package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.Languages, []string{"javascript"}) {
		t.Fatalf("expected javascript default, got %v", cfg.App.Languages)
	}
	if cfg.App.HistoryDepth != 100 {
		t.Fatalf("expected history 100, got %d", cfg.App.HistoryDepth)
	}
	if !cfg.App.ShowFooter || !cfg.App.Mouse {
		t.Fatalf("expected footer and mouse enabled by default, got %+v", cfg.App)
	}
	if cfg.App.CodeStyle == "" {
		t.Fatalf("expected a default code style")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"SLASHPAD_WIDTH=90",
		"SLASHPAD_LANGUAGES=go, python",
		"SLASHPAD_TRACE=true",
		"SLASHPAD_FOOTER=false",
	}
	cfg, err := LoadArgs([]string{"--width", "120", "--history", "5"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected flag width 120, got %d", cfg.App.Width)
	}
	if !reflect.DeepEqual(cfg.App.Languages, []string{"go", "python"}) {
		t.Fatalf("expected env languages, got %v", cfg.App.Languages)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled from env")
	}
	if cfg.App.HistoryDepth != 5 {
		t.Fatalf("expected history 5, got %d", cfg.App.HistoryDepth)
	}
	if cfg.Flags["languages"] != "go,python" {
		t.Fatalf("expected normalised languages flag, got %q", cfg.Flags["languages"])
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative width":   {"--width", "-1"},
		"negative height":  {"--height", "-3"},
		"negative history": {"--history", "-2"},
		"no languages":     {"--languages", " , "},
		"unknown flag":     {"--socket", "x"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadArgs(args, nil); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SLASHPAD_HEIGHT=tall", "SLASHPAD_MOUSE=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || !cfg.App.Mouse {
		t.Fatalf("expected defaults for unparsable env, got %+v", cfg.App)
	}
}

func TestValidateContentFile(t *testing.T) {
	dir := t.TempDir()
	if err := Validate(Config{}); err != nil {
		t.Fatalf("expected empty content path to pass, got %v", err)
	}
	missing := Config{}
	missing.App.ContentPath = filepath.Join(dir, "missing.yaml")
	if err := Validate(missing); err == nil {
		t.Fatalf("expected missing file error")
	}
	isDir := Config{}
	isDir.App.ContentPath = dir
	if err := Validate(isDir); err == nil {
		t.Fatalf("expected directory error")
	}
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("type: doc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ok := Config{}
	ok.App.ContentPath = path
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
