package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/database"
	"github.com/jask/shopfront/internal/database/repository"
	"github.com/jask/shopfront/internal/fixtures"
)

func (a *app) newSeedCmd() *cobra.Command {
	var (
		reset bool
		extra int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the local catalog database",
		Long: `Seed creates the local sqlite catalog if needed and fills it with the demo
categories and products. --extra adds synthetic products on top, which is
handy for exercising the grid and the search panel with a larger catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := a.cfg.Database.Path
			db, err := openLocalDB(ctx, path)
			if err != nil {
				return err
			}
			defer db.Close()

			if reset {
				if err := database.Reset(db); err != nil {
					return fmt.Errorf("reset: %w", err)
				}
				if err := database.SeedDefaults(ctx, db); err != nil {
					return fmt.Errorf("seed defaults: %w", err)
				}
			}
			repos := fixtures.Repos{Categories: repository.NewCategoryRepo(db), Products: repository.NewProductRepo(db)}
			if extra > 0 {
				n, err := fixtures.Seed(ctx, repos, extra, seed)
				if err != nil {
					return fmt.Errorf("synthetic products (%d written): %w", n, err)
				}
			}
			total, err := repos.Products.Count(ctx)
			if err != nil {
				return err
			}
			a.logger.Info("catalog seeded", zap.String("path", path), zap.Int("products", total), zap.Bool("reset", reset))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d products\n", path, total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete every category and product first")
	cmd.Flags().IntVar(&extra, "extra", 0, "number of synthetic products to add")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for synthetic products")
	return cmd
}
