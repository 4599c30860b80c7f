package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursegen/pkg/template"
)

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, ".coursegen")
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "config.yaml")
}

func TestLoadConfig_NotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, template.CourseTemplateName, cfg.Template)
	assert.Equal(t, "0755", cfg.Permissions.Dir)
	assert.Equal(t, "0644", cfg.Permissions.File)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfig_Valid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
template: my-course
template_dir: /srv/templates
permissions:
  dir: 0750
history:
  enabled: true
  path: /tmp/runs.db
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "my-course", cfg.Template)
	assert.Equal(t, "/srv/templates", cfg.TemplateDir)
	assert.Equal(t, "0750", cfg.Permissions.Dir)
	assert.Equal(t, "0644", cfg.Permissions.File)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/runs.db", cfg.HistoryPath())

	dirMode, err := cfg.Permissions.DirMode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0750), dirMode)
}

func TestLoadConfig_InvalidPermission(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("permissions:\n  file: rw-r--r--\n"), 0644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions.file")
}

func TestParsePerm(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{in: "", want: 0700},
		{in: "0755", want: 0755},
		{in: "755", want: 0755},
		{in: "0o644", want: 0644},
		{in: " 0600 ", want: 0600},
		{in: "0999", wantErr: true},
		{in: "01777", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePerm(tt.in, 0700)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryPath_Default(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(DefaultConfigDir(), "history.db"), cfg.HistoryPath())
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := WriteDefaultConfig(configPath)
	require.NoError(t, err)
	assert.True(t, written)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, os.WriteFile(configPath, []byte("template: custom\n"), 0644))
	written, err = WriteDefaultConfig(configPath)
	require.NoError(t, err)
	assert.False(t, written)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "template: custom\n", string(data))
}
