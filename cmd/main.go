package main

import (
	"fmt"
	"os"

	"medical-api/cmd/bootstrap"
	"medical-api/config"
	"medical-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var (
		cfg *config.Config
		log *logrus.Logger
	)

	rootCmd := &cobra.Command{
		Use:          "medical-api",
		Short:        "Doctors and patients registry API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log = bootstrap.NewLogger(cfg.App)
			return nil
		},
	}

	serve := serveCmd(&cfg, &log)
	rootCmd.RunE = serve.RunE
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd(&cfg, &log))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(cfg **config.Config, log **logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New(*cfg, *log)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run()
		},
	}
}

func migrateCmd(cfg **config.Config, log **logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.MigrateUp((*cfg).DB, *log)
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return database.MigrateDown((*cfg).DB, steps, *log)
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back, 0 for all")
	cmd.AddCommand(downCmd)

	return cmd
}
