package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"njeeny/internal/certs"
	"njeeny/internal/cms"
	"njeeny/internal/config"
	"njeeny/internal/nginx"
	"njeeny/internal/schema"
	"njeeny/internal/settings"
	"njeeny/internal/store"
	"njeeny/internal/util/hashx"
)

// App wires one wizard run: questions, rendering, staging.
// Keep it transport-agnostic (no flag parsing, no direct stdin/stdout).
type App struct {
	cfg    *config.Config
	paths  config.Paths
	schema schema.Schema
	render *nginx.Renderer
	ng     *nginx.Manager     // nil unless nginx.root is configured
	le     *certs.LetsEncrypt // nil unless https.letsencrypt_live is configured
	detect settings.DetectFunc
	log    *zap.Logger
}

func New(cfg *config.Config, paths config.Paths, templates store.TemplateStore, log *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg is nil")
	}
	if templates == nil {
		return nil, fmt.Errorf("template store is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	sch := schema.Default()
	if err := sch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", settings.ErrSchemaMismatch, err)
	}

	hook := nginx.HTTPSDefaultsFunc(nginx.NoHTTPSDefaults)
	var le *certs.LetsEncrypt
	if cfg.HTTPS.LetsEncryptLive != "" {
		le = certs.NewLetsEncrypt(cfg.HTTPS.LetsEncryptLive)
		hook = le.HTTPSDefaults
	}

	a := &App{
		cfg:    cfg,
		paths:  paths,
		schema: sch,
		render: nginx.NewRenderer(templates, cfg.PHP.FastCGIPass, hook),
		le:     le,
		detect: cms.Detect,
		log:    log,
	}

	if paths.Managed() {
		mgr := nginx.NewManager(
			paths.NginxBin,
			paths.NginxMainConf,
			paths.NginxSitesDir,
			paths.NginxStageDir,
			paths.NginxBackupDir,
		)
		if err := mgr.EnsureLayout(); err != nil {
			return nil, fmt.Errorf("nginx layout: %w", err)
		}
		a.ng = mgr
	}

	return a, nil
}

// Result describes a finished run.
type Result struct {
	Settings   settings.Settings
	Site       nginx.Site
	Config     string
	Checksum   string
	StagedPath string
	Published  bool // live file written (false when unchanged or not enabled)
	Warnings   []string
}

// Run asks every question through p, renders the configuration and writes it
// to out. When nginx.root is configured the config is staged, and published
// if the enable answer is Yes.
func (a *App) Run(ctx context.Context, p settings.Prompter, out io.Writer) (Result, error) {
	var res Result

	st, err := settings.NewCollector(a.schema, p, a.detect, a.log).Collect()
	if err != nil {
		return res, err
	}
	res.Settings = st

	if err := ctx.Err(); err != nil {
		return res, err
	}

	site, err := nginx.SiteFromSettings(st)
	if err != nil {
		return res, err
	}
	res.Site = site

	text, err := a.render.RenderSite(site)
	if err != nil {
		return res, err
	}
	res.Config = text
	res.Checksum = hashx.Short([]byte(text))

	a.log.Info("rendered",
		zap.String("domain", site.Domain),
		zap.Stringer("cms", site.CMS),
		zap.Int("redirects", len(site.Redirects())),
		zap.String("checksum", res.Checksum),
	)

	if _, err := io.WriteString(out, "\n"+text); err != nil {
		return res, fmt.Errorf("write config: %w", err)
	}

	if site.HTTPS && a.le != nil {
		if w := a.le.Check(site.Domain, a.cfg.HTTPS.WarnDays); w != "" {
			res.Warnings = append(res.Warnings, w)
		}
	}

	enable, _ := st.Flag(schema.KeyEnable)
	if err := a.emit(&res, enable); err != nil {
		return res, err
	}
	return res, nil
}

func (a *App) emit(res *Result, enable bool) error {
	domain := res.Site.Domain

	if a.ng == nil {
		if enable {
			res.Warnings = append(res.Warnings, "nginx.root is not configured: printed only, nothing enabled")
		}
		return nil
	}

	staged, err := a.ng.Stage(domain, []byte(res.Config))
	if err != nil {
		return fmt.Errorf("stage %s: %w", domain, err)
	}
	res.StagedPath = staged
	a.log.Info("staged", zap.String("domain", domain), zap.String("path", staged))

	if !enable {
		return nil
	}

	changed, err := a.ng.Publish(domain)
	if err != nil {
		return fmt.Errorf("enable %s: %w", domain, err)
	}
	res.Published = changed
	if !changed {
		res.Warnings = append(res.Warnings, "live config for "+domain+" already up to date")
	}

	if a.cfg.Nginx.TestAfterEnable {
		diag, err := a.ng.TestConfig()
		if diag != "" {
			a.log.Info("nginx -t", zap.String("output", diag))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
