package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yukikurage/collabhub/internal/config"
	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/logging"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "collabhub",
	Short: "Research collaboration platform",
	Long: `collabhub serves the research collaboration platform: a feed of posts,
researcher and problem search, projects and collaboration requests.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfg = config.Load()
		logging.Setup(cfg)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// connect opens the configured database and runs migrations.
func connect() error {
	if err := database.Connect(cfg); err != nil {
		return err
	}
	return database.Migrate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("collabhub failed")
		os.Exit(1)
	}
}
