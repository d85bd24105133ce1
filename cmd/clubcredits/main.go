package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/app"
	"github.com/GlebRadaev/clubcredits/internal/config"
	"github.com/GlebRadaev/clubcredits/internal/fixtures"
)

//	@title			Club Credits API
//	@version		1.0
//	@description	Volunteer credit ledger and task board for sports clubs

// @host						localhost:8080
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Can't read configuration")
	}

	rootCmd := &cobra.Command{
		Use:           "clubcredits",
		Short:         "Volunteer credit ledger and task board",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}
	rootCmd.PersistentFlags().AddGoFlagSet(cfg.FlagSet())
	rootCmd.AddCommand(serveCmd(cfg), fixturesCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func serveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}
}

func fixturesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Validate the seed snapshot and print its record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				snap *fixtures.Snapshot
				err  error
			)
			if cfg.FixturesPath != "" {
				snap, err = fixtures.LoadFile(cfg.FixturesPath)
			} else {
				snap, err = fixtures.Load()
			}
			if err != nil {
				return err
			}

			counts := snap.Counts()
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", name, counts[name])
			}
			return nil
		},
	}
}

func serve(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(cfg)
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
	return nil
}
