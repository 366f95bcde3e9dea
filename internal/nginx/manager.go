package nginx

import (
	"fmt"
	"os"
	"path/filepath"

	"njeeny/internal/util/atomic"
)

// Manager owns the on-disk layout generated configs go through:
// staging -> live sites dir, with the previous live file kept in BackupDir.
type Manager struct {
	Bin       string
	MainConf  string
	SitesDir  string
	StageDir  string
	BackupDir string
}

func NewManager(bin, mainConf, sitesDir, stageDir, backupDir string) *Manager {
	return &Manager{
		Bin:       bin,
		MainConf:  mainConf,
		SitesDir:  sitesDir,
		StageDir:  stageDir,
		BackupDir: backupDir,
	}
}

// EnsureLayout creates the sites, staging and backup directories.
func (m *Manager) EnsureLayout() error {
	dirs := []string{
		m.SitesDir,
		m.BackupDir,
		filepath.Join(m.StageDir, "sites"),
	}

	for _, d := range dirs {
		if d == "" || d == "sites" {
			continue
		}
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("mkdir %s: %w", d, err)
		}
	}
	return nil
}

func (m *Manager) stagePath(domain string) string {
	return filepath.Join(m.StageDir, "sites", domain+".conf")
}

// Stage writes a rendered config for domain into the staging directory.
func (m *Manager) Stage(domain string, data []byte) (string, error) {
	if domain == "" {
		return "", fmt.Errorf("domain is required")
	}
	if m.StageDir == "" {
		return "", fmt.Errorf("staging dir is not configured")
	}
	out := m.stagePath(domain)
	if err := atomic.WriteFileAtomic(out, data, 0644); err != nil {
		return "", err
	}
	return out, nil
}
