package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/catalog"
	"github.com/jask/shopfront/internal/config"
	"github.com/jask/shopfront/internal/home"
	"github.com/jask/shopfront/internal/logging"
)

// app holds what every subcommand shares once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "shopfront",
		Short: "Browse a storefront catalog from the terminal",
		Long: `shopfront renders a storefront home screen: a category browser, a filter
and search panel, and the product grid they drive.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $HOME/.config/shopfront/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(a.newSeedCmd(), a.newSearchCmd())
	return root
}

func (a *app) runInteractive(ctx context.Context) error {
	src, closeSource, err := openSource(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer closeSource()

	env := home.Env{
		Ctx:          ctx,
		Timeout:      a.cfg.Catalog.Timeout,
		Log:          a.logger,
		Currency:     a.cfg.UI.CurrencySymbol,
		ImageBaseURL: a.cfg.Catalog.ImageBaseURL,
	}
	deps := home.Deps{
		Categories: src,
		Products:   src,
		Searcher:   src,
		Router:     home.ListingRouter{Lister: src, Env: env},
	}
	model := home.New(home.NewStore(home.State{}), deps, env, sliderImages(a.cfg.UI.SliderImages))

	a.logger.Info("starting ui", zap.String("source", a.cfg.Catalog.Source))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func sliderImages(refs []string) []catalog.Image {
	out := make([]catalog.Image, 0, len(refs))
	for i, ref := range refs {
		out = append(out, catalog.Image{ID: fmt.Sprintf("slide-%d", i+1), Ref: ref})
	}
	return out
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
