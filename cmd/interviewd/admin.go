package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/core/service"
	"github.com/hireflow/interviewer/internal/infrastructure/config"
	mongodb "github.com/hireflow/interviewer/internal/infrastructure/db/mongo"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Long: `Create an admin account in the configured MongoDB database.

Examples:
  interviewd admin create --email admin@example.com --password 'correct-horse'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		return withAdmins(cmd.Context(), func(ctx context.Context, auth ports.AuthService) error {
			admin, err := auth.CreateAdmin(ctx, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		})
	},
}

var adminResetCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password for an existing admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		return withAdmins(cmd.Context(), func(ctx context.Context, auth ports.AuthService) error {
			if err := auth.ResetPassword(ctx, email, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", email)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{adminCreateCmd, adminResetCmd} {
		c.Flags().String("email", "", "admin email")
		c.Flags().String("password", "", "admin password (at least 8 characters)")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	adminCmd.AddCommand(adminCreateCmd, adminResetCmd)
}

// withAdmins connects to MongoDB and hands fn an auth service over the admins
// collection. Admin accounts only persist in MongoDB.
func withAdmins(parent context.Context, fn func(ctx context.Context, auth ports.AuthService) error) error {
	cfg, err := config.LoadStorage(parent)
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreMongo {
		return fmt.Errorf("admin commands require STORE_DRIVER=%s", config.StoreMongo)
	}

	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	// Tokens are never issued here, so no signing secret is needed.
	auth := service.NewAuthService(mongodb.NewAdminRepository(db), "", cfg.AdminTokenTTL)
	return fn(ctx, auth)
}
