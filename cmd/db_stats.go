package cmd

import (
	"fmt"

	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/spf13/cobra"
)

var dbStatsCmd = &cobra.Command{
	Use:   "db-stats",
	Short: "Show database statistics",
	Long:  `Display row counts for users, recipes, tags and ingredients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := database.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		stats, err := db.GetStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get database stats: %w", err)
		}

		fmt.Println("Database Statistics:")
		fmt.Printf("Users: %d\n", stats.Users)
		fmt.Printf("Recipes: %d\n", stats.Recipes)
		fmt.Printf("Tags: %d\n", stats.Tags)
		fmt.Printf("Ingredients: %d\n", stats.Ingredients)
		fmt.Printf("Recipes with images: %d\n", stats.RecipesWithImages)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbStatsCmd)
}
