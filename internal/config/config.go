package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/slashpad/internal/app"
	"github.com/atomicstack/slashpad/internal/highlight"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth     = "SLASHPAD_WIDTH"
	envHeight    = "SLASHPAD_HEIGHT"
	envFooter    = "SLASHPAD_FOOTER"
	envMouse     = "SLASHPAD_MOUSE"
	envContent   = "SLASHPAD_CONTENT"
	envLanguages = "SLASHPAD_LANGUAGES"
	envCodeStyle = "SLASHPAD_CODE_STYLE"
	envHistory   = "SLASHPAD_HISTORY"
	envTrace     = "SLASHPAD_TRACE"
	envLogFile   = "SLASHPAD_LOG_FILE"
)

const (
	defaultLanguages = "javascript"
	defaultHistory   = 100
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("slashpad", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show the key hint footer")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "track mouse motion for hover and clicks")
	content := fs.String("content", envOrDefault(env, envContent, ""), "path to a YAML or JSON content tree to open instead of the demo document")
	languages := fs.String("languages", envOrDefault(env, envLanguages, defaultLanguages), "comma separated code block languages; the first is the default")
	codeStyle := fs.String("code-style", envOrDefault(env, envCodeStyle, highlight.DefaultStyle), "chroma style used to colour code blocks")
	history := fs.Int("history", envOrInt(env, envHistory, defaultHistory), "undo history depth (0 disables undo)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *history < 0 {
		return Config{}, fmt.Errorf("history must be >= 0 (got %d)", *history)
	}
	langs := splitList(*languages)
	if len(langs) == 0 {
		return Config{}, errors.New("at least one code block language is required")
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Mouse:        *mouse,
			ContentPath:  *content,
			Languages:    langs,
			CodeStyle:    *codeStyle,
			HistoryDepth: *history,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"mouse":     strconv.FormatBool(*mouse),
			"content":   *content,
			"languages": strings.Join(langs, ","),
			"codeStyle": *codeStyle,
			"history":   strconv.Itoa(*history),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks configuration that depends on the filesystem.
func Validate(cfg Config) error {
	if path := cfg.App.ContentPath; path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("content file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("content file %s is a directory", path)
		}
	}
	return nil
}
