package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/flickr-search/internal/config"
	"github.com/ytget/flickr-search/internal/flickr"
	"github.com/ytget/flickr-search/internal/logging"
	"github.com/ytget/flickr-search/internal/platform"
	"github.com/ytget/flickr-search/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.flickr-search"
	AppName = "Flickr Search"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "flickr-search",
		Short:         "Search and share Flickr photos",
		Long:          "A photo browser that searches Flickr, expands photos in place and exports selections for sharing",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			return run(cfg, log)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultConfigFile, "Path to the YAML configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Set the logging level (debug, info, warn, error); overrides the config file")
	return cmd
}

// load reads the configuration and builds the logger
func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("error loading config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	log := logging.Setup(cfg.Log.Level, os.Stderr)
	log.Debug().Str("config", o.configPath).Str("level", cfg.Log.Level).Msg("configuration loaded")
	return cfg, log, nil
}

func run(cfg *config.Config, log zerolog.Logger) error {
	log.Info().Str("version", version).Msgf("%s starting", AppName)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPhotoTheme())

	settings := config.NewSettings(myApp, cfg)

	source := flickr.NewService(flickr.Options{
		Endpoint:    cfg.Flickr.Endpoint,
		APIKey:      settings.GetAPIKey,
		PerPage:     settings.GetPerPage,
		Concurrency: cfg.Flickr.Concurrency,
		Timeout:     cfg.Flickr.Timeout,
	}, log.With().Str("component", "flickr").Logger())
	defer source.Close()

	exporter := platform.NewShareExporter(
		settings.GetShareDirectory,
		cfg.Share.MaxDimension,
		log.With().Str("component", "share").Logger(),
	)

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	root := ui.NewRootUI(window, ui.Options{
		Source:   source,
		Exporter: exporter,
		Settings: settings,
		Log:      log.With().Str("component", "ui").Logger(),
	})
	defer root.Controller().Close()

	window.ShowAndRun()
	log.Info().Msg("shutting down")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
