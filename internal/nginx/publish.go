package nginx

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"njeeny/internal/util/atomic"
)

// Publish copies a staged site config into the live sites directory.
// The current live file, if any, is saved to BackupDir first.
// It returns changed=false if the live file already matches the staged content.
func (m *Manager) Publish(domain string) (bool, error) {
	if domain == "" {
		return false, fmt.Errorf("domain is required")
	}
	if m.SitesDir == "" {
		return false, fmt.Errorf("sites dir is not configured")
	}

	src := m.stagePath(domain)
	dst := filepath.Join(m.SitesDir, domain+".conf")
	bak := filepath.Join(m.BackupDir, domain+".conf.bak")

	data, err := os.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("read staging %s: %w", src, err)
	}

	old, err := os.ReadFile(dst)
	switch {
	case err == nil:
		if bytes.Equal(old, data) {
			return false, nil
		}
		if m.BackupDir != "" {
			if err := atomic.WriteFileAtomic(bak, old, 0644); err != nil {
				return false, fmt.Errorf("write backup %s: %w", bak, err)
			}
		}
	case !os.IsNotExist(err):
		return false, fmt.Errorf("read live %s: %w", dst, err)
	}

	if err := atomic.WriteFileAtomic(dst, data, 0644); err != nil {
		return false, fmt.Errorf("publish %s: %w", dst, err)
	}
	return true, nil
}
