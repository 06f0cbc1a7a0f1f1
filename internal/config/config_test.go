package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var allEnv = []string{
	EnvConfig, EnvDataset, EnvPlotPath, EnvPlotFormat, EnvLogLevel,
	EnvLogFormat, EnvTimeLimit, EnvVerify, EnvExcludeExact, EnvJSON,
}

// isolate clears every variable Load reads and points XDG_CONFIG_HOME at an
// empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range allEnv {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	want := Default()
	require.Equal(t, &want, cfg)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "vc.toml")
	writeFile(t, path, `
dataset = "graphs/petersen.txt"
plot_path = "out"
plot_format = "dot"
log_level = "debug"
time_limit = "1m30s"
verify = true
exclude_exact = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "graphs/petersen.txt", cfg.Dataset)
	require.Equal(t, "out", cfg.PlotPath)
	require.Equal(t, "dot", cfg.PlotFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 90*time.Second, cfg.TimeLimit)
	require.True(t, cfg.Verify)
	require.True(t, cfg.ExcludeExact)
	require.False(t, cfg.JSON)
	require.Equal(t, path, cfg.Source)
}

func TestLoad_XDGFileAndEnvOverride(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "vertexcover", "config.toml"), `plot_format = "dot"
json = false
`)
	t.Setenv(EnvJSON, "true")
	t.Setenv(EnvTimeLimit, "250ms")
	t.Setenv(EnvDataset, "env.txt")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dot", cfg.PlotFormat)
	require.True(t, cfg.JSON)
	require.Equal(t, 250*time.Millisecond, cfg.TimeLimit)
	require.Equal(t, "env.txt", cfg.Dataset)
	require.Equal(t, filepath.Join(dir, "vertexcover", "config.toml"), cfg.Source)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.toml")
	writeFile(t, path, `log_format = "json"`)
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "MissingExplicitFile", file: "-"},
		{name: "BadTOML", file: `plot_format = `},
		{name: "BadPlotFormat", file: `plot_format = "png"`},
		{name: "BadLogFormat", env: map[string]string{EnvLogFormat: "xml"}},
		{name: "BadLevel", env: map[string]string{EnvLogLevel: "chatty"}},
		{name: "BadBool", env: map[string]string{EnvVerify: "sometimes"}},
		{name: "BadDuration", env: map[string]string{EnvTimeLimit: "soon"}},
		{name: "NegativeDuration", env: map[string]string{EnvTimeLimit: "-1s"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			switch tc.file {
			case "":
			case "-":
				path = filepath.Join(dir, "absent.toml")
			default:
				path = filepath.Join(dir, "c.toml")
				writeFile(t, path, tc.file)
			}

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestValidate_EmptyPlotPath(t *testing.T) {
	c := Default()
	c.PlotPath = ""
	require.NoError(t, c.Validate())
	require.Equal(t, ".", c.PlotPath)
	c.PlotFormat = "gif"
	require.ErrorIs(t, c.Validate(), ErrInvalid)
}
