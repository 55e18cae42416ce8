package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	fs.String("page", DefaultStartPage, "")
	fs.Int("width", DefaultWidth, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "Data/team_data.csv", cfg.DataPath)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "Relationship", cfg.StartPage)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.Watch)
	assert.Equal(t, DefaultWidth, cfg.Window.Width)
	assert.Empty(t, cfg.File)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, DefaultConfigFile, `
data_path: from-file.csv
top_n: 5
start_page: story
theme: light
window:
  width: 900
  height: 600
`)

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "from-file.csv", cfg.DataPath)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "Story", cfg.StartPage)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 900, cfg.Window.Width)
	assert.Equal(t, DefaultConfigFile, cfg.File)

	// env beats file
	t.Setenv("FWC_TOP_N", "7")
	t.Setenv("FWC_WINDOW__HEIGHT", "650")
	cfg, err = Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, 650, cfg.Window.Height)
	assert.Equal(t, "from-file.csv", cfg.DataPath)

	// set flags beat env, unset flags leave lower layers alone
	cfg, err = Load(newFlags(t, "--top", "3", "--data", "flag.csv", "--width", "1000"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "flag.csv", cfg.DataPath)
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, "Story", cfg.StartPage)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	p := writeFile(t, dir, "custom.yaml", "start_page: Team\nhover: false\n")
	cfg, err := Load(newFlags(t, "--config", p))
	require.NoError(t, err)
	assert.Equal(t, "Team", cfg.StartPage)
	assert.False(t, cfg.Hover)
	assert.Equal(t, p, cfg.File)

	_, err = Load(newFlags(t, "--config", filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{DataPath: "x.csv", TopN: 10, LogLevel: "info", StartPage: "stats", Theme: "DARK"}
	}
	c := base()
	require.NoError(t, c.Validate())
	assert.Equal(t, "Stats", c.StartPage)
	assert.Equal(t, "dark", c.Theme)
	assert.Equal(t, DefaultWidth, c.Window.Width)

	cases := map[string]func(*Config){
		"empty path": func(c *Config) { c.DataPath = " " },
		"zero top":   func(c *Config) { c.TopN = 0 },
		"bad level":  func(c *Config) { c.LogLevel = "loud" },
		"bad page":   func(c *Config) { c.StartPage = "Players" },
		"bad theme":  func(c *Config) { c.Theme = "blue" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestNormalizePage(t *testing.T) {
	p, ok := NormalizePage(" relationship ")
	assert.True(t, ok)
	assert.Equal(t, "Relationship", p)
	_, ok = NormalizePage("Units")
	assert.False(t, ok)
}
