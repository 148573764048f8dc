package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/repository"
	"github.com/yukikurage/collabhub/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the demonstration dataset",
	Long: `seed deletes every field, subfield, user, problem, project, post and
collaboration request, then loads the demonstration dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(); err != nil {
			return err
		}

		ctx := log.Logger.WithContext(cmd.Context())
		_, err := seed.Run(ctx, repository.NewStore(database.GetDB()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
