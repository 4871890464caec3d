package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ansadash/api/internal/domain"
	"ansadash/api/internal/infra/postgres"
	"ansadash/api/internal/repository"
)

var (
	createUserEmail string
	createUserFirst string
	createUserLast  string
	createUserRole  string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Find or create a dashboard user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, log := setup()

		usersRepo := repository.InitUsersRepo()

		existing, err := usersRepo.FindByEmail(db, createUserEmail)
		if err == nil {
			fmt.Printf("user already exists: %s (%s)\n", existing.Email, existing.UUID)
			return nil
		}
		if !postgres.IsNotFound(err) {
			return fmt.Errorf("lookup user: %w", err)
		}

		user := &domain.Users{
			UUID:      uuid.NewString(),
			Email:     createUserEmail,
			FirstName: createUserFirst,
			LastName:  createUserLast,
			Role:      createUserRole,
		}
		if err := usersRepo.Create(db, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		log.Info("user created", "email", user.Email, "uuid", user.UUID, "role", user.Role)
		fmt.Printf("created user %s (%s)\n", user.Email, user.UUID)
		return nil
	},
}

func init() {
	createUserCmd.Flags().StringVar(&createUserEmail, "email", "", "user email (required)")
	createUserCmd.Flags().StringVar(&createUserFirst, "first-name", "", "first name")
	createUserCmd.Flags().StringVar(&createUserLast, "last-name", "", "last name")
	createUserCmd.Flags().StringVar(&createUserRole, "role", "member", "user role (member or superadmin)")
	createUserCmd.MarkFlagRequired("email")
}
