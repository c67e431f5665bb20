package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/errdefs"
	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	envConfigPath = "DANKPAGES_CONFIG"
	envLayout     = "DANKPAGES_LAYOUT"
	envTheme      = "DANKPAGES_THEME"
	envLogLevel   = "DANKPAGES_LOG_LEVEL"
	envLogFile    = "DANKPAGES_LOG_FILE"

	DefaultAppName      = "Dank Pages"
	DefaultProgressStep = 1.0
	FineProgressStep    = 0.01
)

// Config is the on-disk configuration, ~/.config/dankpages/config.yaml.
type Config struct {
	AppName      string   `yaml:"app_name"`
	Layout       string   `yaml:"layout"`
	Pages        []string `yaml:"pages,omitempty"`
	Theme        string   `yaml:"theme"`
	ProgressStep float64  `yaml:"progress_step"`
	StrictPages  bool     `yaml:"strict_pages"`
	Log          Logging  `yaml:"log"`
}

type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() Config {
	return Config{
		AppName:      DefaultAppName,
		Layout:       pages.DefaultLayoutName,
		Theme:        "dark",
		ProgressStep: DefaultProgressStep,
		Log: Logging{
			Level: "info",
		},
	}
}

// Loader reads configuration through an afero filesystem so tests can run
// against an in-memory tree.
type Loader struct {
	Fs      afero.Fs
	Environ []string
	HomeDir string
}

func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		Fs:      afero.NewOsFs(),
		Environ: os.Environ(),
		HomeDir: home,
	}
}

// DefaultPath is where the config lives when nothing overrides it.
func (l *Loader) DefaultPath() string {
	env := parseEnv(l.Environ)
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "dankpages", "config.yaml")
	}
	return filepath.Join(l.HomeDir, ".config", "dankpages", "config.yaml")
}

// Load resolves the config file, applies environment overrides and validates.
// An explicit path (flag or DANKPAGES_CONFIG) must exist; the default path may not.
func (l *Loader) Load(explicitPath string) (Config, string, error) {
	env := parseEnv(l.Environ)

	path := explicitPath
	if path == "" {
		path = env[envConfigPath]
	}
	required := path != ""
	if path == "" {
		path = l.DefaultPath()
	}

	cfg := Default()
	data, err := afero.ReadFile(l.Fs, path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, path, errdefs.Wrap(errdefs.ErrTypeInvalidConfig, err, fmt.Sprintf("parse %s", path))
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		path = ""
	default:
		return Config{}, path, errdefs.Wrap(errdefs.ErrTypeInvalidConfig, err, fmt.Sprintf("read %s", path))
	}

	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

func (c *Config) applyEnv(env map[string]string) {
	if v := env[envLayout]; v != "" {
		c.Layout = v
		c.Pages = nil
	}
	if v := env[envTheme]; v != "" {
		c.Theme = v
	}
	if v := env[envLogLevel]; v != "" {
		c.Log.Level = v
	}
	if v, ok := env[envLogFile]; ok {
		c.Log.File = v
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return errdefs.NewCustomError(errdefs.ErrTypeInvalidConfig, "app_name must not be empty")
	}
	if _, err := c.PageLayout(); err != nil {
		return errdefs.Wrap(errdefs.ErrTypeInvalidConfig, err, "layout")
	}
	if _, err := c.InitialTheme(); err != nil {
		return err
	}
	if c.ProgressStep <= 0 || c.ProgressStep > pages.ProgressMax {
		return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidConfig, "progress_step must be in (0, %s], got %s",
			strconv.FormatFloat(pages.ProgressMax, 'f', -1, 64), strconv.FormatFloat(c.ProgressStep, 'f', -1, 64))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidConfig, "unknown log level %q", c.Log.Level)
	}
	return nil
}

// PageLayout prefers an explicit pages list over the preset name.
func (c Config) PageLayout() (pages.Layout, error) {
	if len(c.Pages) > 0 {
		return pages.ParseLayout(strings.Join(c.Pages, ","))
	}
	return pages.ParseLayout(c.Layout)
}

func (c Config) InitialTheme() (pages.Theme, error) {
	return pages.ParseTheme(c.Theme)
}

func parseEnv(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
