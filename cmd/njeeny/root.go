package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"njeeny/internal/app"
	"njeeny/internal/config"
	"njeeny/internal/exitcodes"
	"njeeny/internal/prompt"
	"njeeny/internal/ui"
)

// Version information - set via -ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "njeeny",
	Short:         "Sensible and secure nginx configurations",
	Long:          "Ask a few questions about a site and print the nginx server blocks for it.",
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWizard,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (default "+config.DefaultPath+" if present)")
	rootCmd.AddCommand(templatesCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pr := ui.NewPrinter(os.Stderr, "auto")
		if cfg, cerr := config.Load(flagConfig); cerr == nil {
			pr = ui.NewPrinter(os.Stderr, cfg.UI.Color)
		}
		pr.Error(err.Error())
		os.Exit(exitcodes.CodeForError(err))
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return exitcodes.InvalidArgsErrorf("unexpected argument %q for %s", args[0], cmd.CommandPath())
	}
	return nil
}

// env is what every command needs after flags are parsed.
type env struct {
	cfg   *config.Config
	paths config.Paths
	log   *zap.Logger
	out   ui.Printer
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, exitcodes.ConfigErr(err)
	}
	log, err := newLogger(cfg.Log.Level, os.Stderr)
	if err != nil {
		return nil, exitcodes.ConfigErr(err)
	}
	log.Debug("config loaded",
		zap.String("path", flagConfig),
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)
	return &env{
		cfg:   cfg,
		paths: cfg.ResolvePaths(),
		log:   log,
		out:   ui.NewPrinter(os.Stderr, cfg.UI.Color),
	}, nil
}

func runWizard(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.log.Sync() //nolint:errcheck

	e.out.Banner(Version)

	templates, closeTemplates, err := app.OpenTemplates(e.paths, e.log)
	if err != nil {
		return exitcodes.ConfigErr(err)
	}
	defer closeTemplates() //nolint:errcheck

	a, err := app.New(e.cfg, e.paths, templates, e.log)
	if err != nil {
		return err
	}

	res, err := a.Run(cmd.Context(), prompt.New(os.Stdin, os.Stdout), os.Stdout)
	if err != nil {
		if errors.Is(err, prompt.ErrInputClosed) {
			return exitcodes.WrapError(exitcodes.InputClosed, "input closed before all questions were answered", err)
		}
		return err
	}

	for _, w := range res.Warnings {
		e.out.Warn(w)
	}
	switch {
	case res.Published:
		e.out.Success("enabled " + res.Site.Domain + " (" + res.Checksum + ")")
	case res.StagedPath != "":
		e.out.Success("staged " + res.StagedPath)
	}
	return nil
}
