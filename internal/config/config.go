package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config path is given. Its absence is not an error.
const DefaultPath = "njeeny.yaml"

type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Nginx     NginxConfig     `yaml:"nginx"`
	PHP       PHPConfig       `yaml:"php"`
	HTTPS     HTTPSConfig     `yaml:"https"`
	Log       LogConfig       `yaml:"log"`
	UI        UIConfig        `yaml:"ui"`
}

type TemplatesConfig struct {
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

type NginxConfig struct {
	Root            string `yaml:"root"` // empty: print only, never stage or enable
	Bin             string `yaml:"bin"`
	MainConf        string `yaml:"main_conf"`
	SitesDir        string `yaml:"sites_dir"`
	StagingDir      string `yaml:"staging_dir"`
	BackupDir       string `yaml:"backup_dir"`
	TestAfterEnable bool   `yaml:"test_after_enable"`
}

type PHPConfig struct {
	FastCGIPass string `yaml:"fastcgi_pass"`
}

// HTTPSConfig controls the extra directives of :443 blocks.
// With LetsEncryptLive empty they carry no certificate lines.
type HTTPSConfig struct {
	LetsEncryptLive string `yaml:"letsencrypt_live"`
	WarnDays        int    `yaml:"warn_days"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type UIConfig struct {
	Color string `yaml:"color"` // auto|always|never
}

// Load reads path, or DefaultPath when path is empty. A missing DefaultPath
// yields the built-in defaults; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Defaults()
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(b, path)
}

// Parse decodes YAML config bytes; name is used in error messages.
func Parse(b []byte, name string) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(b)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true) // catch typos in YAML
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse yaml %q: %w", name, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults is the configuration used when no file is present.
func Defaults() (*Config, error) {
	return Parse(nil, "defaults")
}

func (c *Config) applyDefaults() {
	// Templates
	if c.Templates.Dir == "" {
		c.Templates.Dir = "templates"
	}

	// Nginx (relative to nginx.root)
	if c.Nginx.Bin == "" {
		c.Nginx.Bin = "sbin/nginx"
	}
	if c.Nginx.SitesDir == "" {
		c.Nginx.SitesDir = "conf/sites"
	}
	if c.Nginx.StagingDir == "" {
		c.Nginx.StagingDir = "conf/.staging"
	}
	if c.Nginx.BackupDir == "" {
		c.Nginx.BackupDir = "conf/.backup"
	}

	// PHP
	if c.PHP.FastCGIPass == "" {
		c.PHP.FastCGIPass = "unix:/run/php/php-fpm.sock"
	}

	// HTTPS
	if c.HTTPS.WarnDays == 0 {
		c.HTTPS.WarnDays = 14
	}

	// Log / UI
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.UI.Color == "" {
		c.UI.Color = "auto"
	}
}
