package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "njeeny.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestDefaults(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, "templates", cfg.Templates.Dir)
	assert.Equal(t, "", cfg.Templates.SQLitePath)
	assert.Equal(t, "unix:/run/php/php-fpm.sock", cfg.PHP.FastCGIPass)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.Equal(t, 14, cfg.HTTPS.WarnDays)
	assert.Empty(t, cfg.HTTPS.LetsEncryptLive)
	assert.False(t, cfg.ResolvePaths().Managed())
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "templates", cfg.Templates.Dir)
}

func TestLoadDefaultPathPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("log:\n  level: debug\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFull(t *testing.T) {
	p := writeConfig(t, `
templates:
  dir: /etc/njeeny/templates
  sqlite_path: /var/lib/njeeny/templates.db
nginx:
  root: /opt/nginx
  sites_dir: /etc/nginx/sites-enabled
  test_after_enable: true
php:
  fastcgi_pass: 127.0.0.1:9000
log:
  level: info
ui:
  color: never
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	paths := cfg.ResolvePaths()
	assert.True(t, paths.Managed())
	assert.Equal(t, "/opt/nginx/sbin/nginx", paths.NginxBin)
	assert.Equal(t, "", paths.NginxMainConf)
	assert.Equal(t, "/etc/nginx/sites-enabled", paths.NginxSitesDir)
	assert.Equal(t, "/opt/nginx/conf/.staging", paths.NginxStageDir)
	assert.Equal(t, "/opt/nginx/conf/.backup", paths.NginxBackupDir)
	assert.Equal(t, "/etc/njeeny/templates", paths.TemplatesDir)
	assert.Equal(t, "/var/lib/njeeny/templates.db", paths.TemplatesDB)
	assert.Equal(t, "127.0.0.1:9000", cfg.PHP.FastCGIPass)
}

func TestLoadUnknownField(t *testing.T) {
	p := writeConfig(t, "nginx:\n  roots: /opt/nginx\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roots")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad color", "ui:\n  color: rainbow\n", "ui.color"},
		{"bad fastcgi", "php:\n  fastcgi_pass: \"a b\"\n", "php.fastcgi_pass"},
		{"test without root", "nginx:\n  test_after_enable: true\n", "nginx.test_after_enable"},
		{"negative warn days", "https:\n  warn_days: -1\n", "https.warn_days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
