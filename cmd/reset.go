package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/spf13/cobra"
)

var resetCmdFlags struct {
	Yes bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data from the database",
	Long:  `This command removes every user, recipe, tag and ingredient from the configured database. The schema is kept. Uploaded image files are not touched.`,
	Run:   reset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetCmdFlags.Yes, "yes", false, "Skip the safety check and reset immediately")

	rootCmd.AddCommand(resetCmd)
}

func reset(cmd *cobra.Command, _ []string) {
	if !resetCmdFlags.Yes {
		log.Fatal("refusing to reset without --yes")
	}

	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Info("resetting database", "path", cfg.Database.Path)

	if err := db.Reset(cmd.Context()); err != nil {
		log.Fatalf("failed to reset database: %v", err)
	}

	log.Info("database reset successfully")
}
