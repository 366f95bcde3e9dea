package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

func (c *Config) Validate() error {
	var errs []string

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level=%q invalid: %v", c.Log.Level, err))
	}

	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Sprintf("ui.color=%q unsupported (auto|always|never)", c.UI.Color))
	}

	pass := strings.TrimSpace(c.PHP.FastCGIPass)
	if pass == "" {
		errs = append(errs, "php.fastcgi_pass is required (e.g. unix:/run/php/php-fpm.sock)")
	} else if strings.ContainsAny(pass, " ;{}") {
		errs = append(errs, fmt.Sprintf("php.fastcgi_pass=%q must be a single nginx token", pass))
	}

	if c.HTTPS.WarnDays < 0 {
		errs = append(errs, fmt.Sprintf("https.warn_days=%d must not be negative", c.HTTPS.WarnDays))
	}

	if c.Nginx.TestAfterEnable && strings.TrimSpace(c.Nginx.Root) == "" {
		errs = append(errs, "nginx.test_after_enable needs nginx.root")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
