package main

import (
	"encoding/json"
	"io"

	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/app"
	"atelier_ops/internal/config"
	"atelier_ops/internal/infrastructure/logger"
	"atelier_ops/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// services is what the subcommands run against; tests swap it for mocks.
type services struct {
	migration usecase.IProductMigrationUseCase
	pricing   usecase.IPricingUseCase
	close     func()
}

type serviceLoader func(cmd *cobra.Command) (services, error)

func loadServices(cmd *cobra.Command) (services, error) {
	cfg, err := config.Load()
	if err != nil {
		return services{}, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return services{}, err
	}
	c, err := app.Build(cmd.Context(), cfg, log)
	if err != nil {
		return services{}, err
	}
	return services{
		migration: c.Migration,
		pricing:   c.Pricing,
		close: func() {
			c.Close()
			_ = log.Sync()
		},
	}, nil
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(loadServices)
}

func newRootCmdWith(load serviceLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "opsctl",
		Short:         "Operator tasks for the atelier ops backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrate := &cobra.Command{Use: "migrate", Short: "Product status migration"}
	migrate.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Count products still on the legacy status model",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withServices(cmd, load, func(s services) error {
					st, err := s.migration.Status(cmd.Context())
					if err != nil {
						return err
					}
					return writeJSON(cmd.OutOrStdout(), st)
				})
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Migrate legacy product statuses; safe to repeat",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withServices(cmd, load, func(s services) error {
					rep, err := s.migration.Run(cmd.Context())
					if err != nil {
						return err
					}
					if err := writeJSON(cmd.OutOrStdout(), rep); err != nil {
						return err
					}
					return rep.Err()
				})
			},
		},
	)

	pricingCmd := &cobra.Command{Use: "pricing", Short: "Pricing maintenance"}
	pricingCmd.AddCommand(
		&cobra.Command{
			Use:   "recompute",
			Short: "Recompute every stored breakdown with the current settings",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withServices(cmd, load, func(s services) error {
					res, err := s.pricing.BulkRecompute(cmd.Context())
					if err != nil {
						return err
					}
					if err := writeJSON(cmd.OutOrStdout(), response.FromBatchResult(res)); err != nil {
						return err
					}
					return res.Err()
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Count breakdowns older than the current settings",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withServices(cmd, load, func(s services) error {
					st, err := s.pricing.Status(cmd.Context())
					if err != nil {
						return err
					}
					return writeJSON(cmd.OutOrStdout(), st)
				})
			},
		},
	)

	root.AddCommand(migrate, pricingCmd)
	return root
}

func withServices(cmd *cobra.Command, load serviceLoader, fn func(services) error) error {
	s, err := load(cmd)
	if err != nil {
		return err
	}
	if s.close != nil {
		defer s.close()
	}
	return fn(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
