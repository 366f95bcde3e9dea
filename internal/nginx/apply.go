package nginx

import (
	"fmt"
	"strings"
	"time"

	"njeeny/internal/util/execx"
)

// TestConfig runs "nginx -t" and returns its combined diagnostics.
func (m *Manager) TestConfig() (string, error) {
	if m.Bin == "" {
		return "", fmt.Errorf("nginx bin is not configured")
	}
	args := []string{"-t"}
	if m.MainConf != "" {
		// explicit -c so the result does not depend on the cwd
		args = append(args, "-c", m.MainConf)
	}

	res, err := execx.Run(10*time.Second, m.Bin, args...)
	// nginx prints its diagnostics on stderr even on success
	out := strings.TrimSpace(res.Stdout + res.Stderr)
	if err != nil {
		return out, fmt.Errorf("nginx config test: %w", err)
	}
	return out, nil
}
