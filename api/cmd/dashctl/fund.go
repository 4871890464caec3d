package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ansadash/api/internal/ansa"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/repository"
	"ansadash/api/internal/service"
	"ansadash/pkg/utils"
)

var (
	fundEmail      string
	fundCustomerID string
	fundAmount     string
	fundReason     string
)

// fundingCredentials resolves the email to merchant credentials through the
// same resolver the API uses, so a missing keys row errors instead of
// slipping through.
func fundingCredentials(db *gorm.DB, users repository.Users, merchants repository.Merchants, email string) (*service.MerchantCredentials, error) {
	user, err := users.FindByEmail(db, email)
	if err != nil {
		return nil, fmt.Errorf("user %s not found: %w", email, err)
	}

	auth := service.NewAuthService(users, merchants)
	creds, aerr := auth.ResolveMerchant(db, &domain.Sessions{UserUUID: user.UUID}, service.ResolveOptions{})
	if aerr != nil {
		return nil, fmt.Errorf("resolve merchant for %s: %w", email, aerr)
	}
	return creds, nil
}

var fundCustomerCmd = &cobra.Command{
	Use:   "fund-customer",
	Short: "Credit a customer's balance from merchant funds",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, db, log := setup()

		cents, err := utils.DollarStringToCents(fundAmount)
		if err != nil {
			return fmt.Errorf("parse amount %q: %w", fundAmount, err)
		}
		if cents <= 0 {
			return fmt.Errorf("amount must be positive, got %s", fundAmount)
		}

		creds, err := fundingCredentials(db, repository.InitUsersRepo(), repository.InitMerchantsRepo(), fundEmail)
		if err != nil {
			return err
		}

		client := ansa.NewClient(config.Ansa.Host, config.Ansa.AdminApiKey, log)
		funded, aerr := client.FundCustomerBalance(cmd.Context(), creds.MerchantSecretKey, ansa.FundBalanceParams{
			CustomerID: fundCustomerID,
			Amount:     cents,
			Currency:   "USD",
			Reason:     fundReason,
		})
		if aerr != nil {
			return fmt.Errorf("fund customer balance: %w", aerr)
		}

		fmt.Printf("funded customer %s with $%s, balance now $%s (merchant %s)\n",
			fundCustomerID,
			utils.CentsToDollars(cents).StringFixed(2),
			utils.CentsToDollars(funded.CurrentBalance.Amount).StringFixed(2),
			creds.MerchantID)
		return nil
	},
}

func init() {
	fundCustomerCmd.Flags().StringVar(&fundEmail, "email", "", "dashboard user whose merchant funds the credit (required)")
	fundCustomerCmd.Flags().StringVar(&fundCustomerID, "customer-id", "", "customer to credit (required)")
	fundCustomerCmd.Flags().StringVar(&fundAmount, "amount", "", "dollar amount, e.g. 12.34 (required)")
	fundCustomerCmd.Flags().StringVar(&fundReason, "reason", "manual credit", "reason recorded with the transfer")
	fundCustomerCmd.MarkFlagRequired("email")
	fundCustomerCmd.MarkFlagRequired("customer-id")
	fundCustomerCmd.MarkFlagRequired("amount")
}
