// Package config loads viewer and reader settings.
//
// Precedence, lowest first: built-in defaults, fwc.yaml (or the file given
// with --config), FWC_ environment variables, explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

const (
	EnvPrefix         = "FWC_"
	DefaultConfigFile = "fwc.yaml"
	DefaultStartPage  = "Relationship"
	DefaultTheme      = "dark"
	DefaultWidth      = 1100
	DefaultHeight     = 760
)

// Pages are the valid start_page values, in menu order.
var Pages = []string{"Stats", "Team", "Relationship", "Story"}

var ErrInvalid = errors.New("invalid configuration")

type Window struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

type Config struct {
	DataPath       string `koanf:"data_path"`
	TopN           int    `koanf:"top_n"`
	LogLevel       string `koanf:"log_level"`
	StartPage      string `koanf:"start_page"`
	Theme          string `koanf:"theme"`
	Watch          bool   `koanf:"watch"`
	Hints          bool   `koanf:"hints"`
	Hover          bool   `koanf:"hover"`
	ScreenshotsDir string `koanf:"screenshots_dir"`
	Window         Window `koanf:"window"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_path":       teamdata.DefaultPath,
		"top_n":           teamdata.DefaultTopN,
		"log_level":       "info",
		"start_page":      DefaultStartPage,
		"theme":           DefaultTheme,
		"watch":           true,
		"hints":           false,
		"hover":           true,
		"screenshots_dir": "docs/images",
		"window.width":    DefaultWidth,
		"window.height":   DefaultHeight,
	}
}

// flagKeys maps flag names that differ from their config key.
var flagKeys = map[string]string{
	"data":   "data_path",
	"top":    "top_n",
	"page":   "start_page",
	"width":  "window.width",
	"height": "window.height",
	"out":    "screenshots_dir",
}

// RegisterFlags adds the persistent flags every command understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ./"+DefaultConfigFile+")")
	fs.String("data", teamdata.DefaultPath, "team statistics CSV")
	fs.Int("top", teamdata.DefaultTopN, "number of teams in top-N rankings")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{DefaultConfigFile, "fwc.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey turns FWC_WINDOW__WIDTH into window.width and FWC_TOP_N into top_n.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Load builds a Config. flags may be nil; only flags the user set override
// lower layers.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	explicit := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}
	used := findConfigFile(explicit)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", used, err)
		}
		logging.Debugf("config: loaded %s", used)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises case-insensitive values and rejects the rest.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("%w: data_path is empty", ErrInvalid)
	}
	if c.TopN < 1 {
		return fmt.Errorf("%w: top_n must be at least 1, got %d", ErrInvalid, c.TopN)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	page, ok := NormalizePage(c.StartPage)
	if !ok {
		return fmt.Errorf("%w: unknown start_page %q (want one of %s)", ErrInvalid, c.StartPage, strings.Join(Pages, ", "))
	}
	c.StartPage = page
	switch t := strings.ToLower(c.Theme); t {
	case "dark", "light":
		c.Theme = t
	default:
		return fmt.Errorf("%w: theme must be dark or light, got %q", ErrInvalid, c.Theme)
	}
	if c.Window.Width < 400 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height < 300 {
		c.Window.Height = DefaultHeight
	}
	return nil
}

// NormalizePage matches a page name case-insensitively.
func NormalizePage(name string) (string, bool) {
	for _, p := range Pages {
		if strings.EqualFold(p, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return "", false
}
