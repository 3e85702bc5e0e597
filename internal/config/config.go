package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/paneldock/internal/app"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
	"github.com/atomicstack/paneldock/internal/workspace"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

type Features struct {
	Verbose bool
}

// File is the optional YAML configuration. Flags and environment win over
// values read from it.
type File struct {
	Layout         string                 `yaml:"layout"`
	TargetOrder    string                 `yaml:"target_order"`
	CollapseSingle *bool                  `yaml:"collapse_single"`
	Permanent      []string               `yaml:"permanent"`
	Geometry       map[string]window.Rect `yaml:"geometry"`
}

const (
	envLayout         = "PANELDOCK_LAYOUT"
	envTargetOrder    = "PANELDOCK_TARGET_ORDER"
	envCollapseSingle = "PANELDOCK_COLLAPSE_SINGLE"
	envPermanent      = "PANELDOCK_PERMANENT"
	envWidth          = "PANELDOCK_WIDTH"
	envHeight         = "PANELDOCK_HEIGHT"
	envShowFooter     = "PANELDOCK_FOOTER"
	envVerbose        = "PANELDOCK_VERBOSE"
	envTrace          = "PANELDOCK_TRACE"
	envLogFile        = "PANELDOCK_LOG_FILE"
	envLogLevel       = "PANELDOCK_LOG_LEVEL"
	envConfigFile     = "PANELDOCK_CONFIG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("paneldock", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	layout := fs.String("layout", envOrDefault(env, envLayout, workspace.LayoutDefault), "initial layout: default or empty")
	order := fs.String("target-order", envOrDefault(env, envTargetOrder, tiles.Preorder.String()), "tab group search order when docking: preorder or breadth-first")
	collapse := fs.Bool("collapse-single", envOrBool(env, envCollapseSingle, false), "collapse splits left with a single child")
	permanent := fs.String("permanent", envOrDefault(env, envPermanent, ""), "comma separated panels that cannot be closed or undocked")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show informational diagnostics in the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "warn"), "minimum level written to the log file")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fromEnvOrFlag := func(name, key string) bool {
		_, inEnv := env[key]
		return explicit[name] || inEnv
	}

	var file File
	if strings.TrimSpace(*configFile) != "" {
		loaded, err := ReadFile(*configFile)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}
	if file.Layout != "" && !fromEnvOrFlag("layout", envLayout) {
		*layout = file.Layout
	}
	if file.TargetOrder != "" && !fromEnvOrFlag("target-order", envTargetOrder) {
		*order = file.TargetOrder
	}
	if file.CollapseSingle != nil && !fromEnvOrFlag("collapse-single", envCollapseSingle) {
		*collapse = *file.CollapseSingle
	}
	permanentNames := splitList(*permanent)
	if len(file.Permanent) > 0 && !fromEnvOrFlag("permanent", envPermanent) {
		permanentNames = file.Permanent
	}

	traversal, err := tiles.ParseOrder(*order)
	if err != nil {
		return Config{}, err
	}
	permanentIDs, err := parseIDs(permanentNames)
	if err != nil {
		return Config{}, fmt.Errorf("permanent: %w", err)
	}
	geometry := make(map[panel.ID]window.Rect, len(file.Geometry))
	for name, rect := range file.Geometry {
		id, err := panel.ParseID(name)
		if err != nil {
			return Config{}, fmt.Errorf("geometry: %w", err)
		}
		geometry[id] = rect
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Workspace: workspace.Config{
				Layout:         strings.ToLower(strings.TrimSpace(*layout)),
				Order:          traversal,
				CollapseSingle: *collapse,
				Geometry:       geometry,
				Permanent:      permanentIDs,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *logLevel,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"layout":         *layout,
			"targetOrder":    traversal.String(),
			"collapseSingle": strconv.FormatBool(*collapse),
			"permanent":      strings.Join(permanentNames, ","),
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"verbose":        strconv.FormatBool(*verbose),
			"logFile":        *logFile,
			"logLevel":       *logLevel,
			"config":         *configFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// ReadFile decodes a YAML configuration file.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
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

func parseIDs(names []string) ([]panel.ID, error) {
	ids := make([]panel.ID, 0, len(names))
	for _, name := range names {
		id, err := panel.ParseID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	known := false
	for _, name := range workspace.Layouts() {
		if cfg.App.Workspace.Layout == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown layout %q (want one of %s)", cfg.App.Workspace.Layout, strings.Join(workspace.Layouts(), ", "))
	}
	for id, rect := range cfg.App.Workspace.Geometry {
		if !rect.Valid() {
			return fmt.Errorf("geometry for %s must have positive width and height (got %s)", id, rect)
		}
	}
	return nil
}
