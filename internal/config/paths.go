package config

import (
	"path/filepath"
)

type Paths struct {
	// Nginx; all empty when nginx.root is not set
	NginxRoot      string
	NginxBin       string
	NginxMainConf  string
	NginxSitesDir  string
	NginxStageDir  string
	NginxBackupDir string

	// Templates
	TemplatesDir string
	TemplatesDB  string
}

// Managed reports whether generated configs are staged under nginx.root.
func (p Paths) Managed() bool {
	return p.NginxRoot != ""
}

func (c *Config) ResolvePaths() Paths {
	p := Paths{
		TemplatesDir: c.Templates.Dir,
		TemplatesDB:  c.Templates.SQLitePath,
	}

	root := c.Nginx.Root
	if root == "" {
		return p
	}

	p.NginxRoot = root
	p.NginxBin = absOrJoin(root, c.Nginx.Bin)
	p.NginxMainConf = absOrJoin(root, c.Nginx.MainConf)
	p.NginxSitesDir = absOrJoin(root, c.Nginx.SitesDir)
	p.NginxStageDir = absOrJoin(root, c.Nginx.StagingDir)
	p.NginxBackupDir = absOrJoin(root, c.Nginx.BackupDir)
	return p
}

func absOrJoin(root, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
