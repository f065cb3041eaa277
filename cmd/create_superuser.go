package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/spf13/cobra"
)

var createSuperuserCmdFlags struct {
	Email    string
	Password string
	Name     string
}

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create a superuser account",
	Long:  `Create a user with staff and superuser privileges, for access to the admin endpoints.`,
	Run:   createSuperuser,
}

func init() {
	createSuperuserCmd.Flags().StringVar(&createSuperuserCmdFlags.Email, "email", "", "Email address of the superuser")
	createSuperuserCmd.Flags().StringVar(&createSuperuserCmdFlags.Password, "password", "", "Password of the superuser")
	createSuperuserCmd.Flags().StringVar(&createSuperuserCmdFlags.Name, "name", "", "Display name of the superuser")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createSuperuserCmd)
}

func createSuperuser(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	hash, err := auth.HashPassword(createSuperuserCmdFlags.Password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user, err := db.CreateUser(cmd.Context(), &database.User{
		Email:       createSuperuserCmdFlags.Email,
		Password:    hash,
		Name:        createSuperuserCmdFlags.Name,
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	})
	if err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}

	log.Info("superuser created", "id", user.ID, "email", user.Email)
}
