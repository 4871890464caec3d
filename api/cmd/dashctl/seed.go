package main

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"ansadash/api/internal/ansa"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/logger"
	"ansadash/api/internal/repository"
)

const seedConcurrency = 10

var (
	seedEmail     string
	seedMerchants int
	seedCustomers int
)

var seedMerchantCmd = &cobra.Command{
	Use:   "seed-merchant",
	Short: "Create sandbox merchants with synthetic customers and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, db, log := setup()
		ctx := cmd.Context()

		usersRepo := repository.InitUsersRepo()
		merchantsRepo := repository.InitMerchantsRepo()

		user, err := usersRepo.FindByEmail(db, seedEmail)
		if err != nil {
			return fmt.Errorf("user %s not found, run create-user first: %w", seedEmail, err)
		}

		if !user.IsSuperadmin() && seedMerchants > 1 {
			return fmt.Errorf("user %s is not a superadmin and can only be linked to one merchant", seedEmail)
		}

		client := ansa.NewClient(config.Ansa.Host, config.Ansa.AdminApiKey, log)

		for i := 0; i < seedMerchants; i++ {
			name := gofakeit.Company()

			created, aerr := client.CreateMerchant(ctx, name)
			if aerr != nil {
				return fmt.Errorf("create merchant %q: %w", name, aerr)
			}

			merchantUUID := uuid.NewString()
			err := db.Transaction(func(tx *gorm.DB) error {
				merchant := &domain.Merchants{
					UUID:             merchantUUID,
					AnsaMerchantUUID: created.MerchantID,
					AnsaMerchantName: name,
				}
				if err := merchantsRepo.Create(tx, merchant); err != nil {
					return err
				}
				keys := &domain.MerchantKeys{
					MerchantUUID:          merchantUUID,
					AnsaMerchantSecretKey: created.MerchantSecretKey,
				}
				if err := merchantsRepo.CreateKeys(tx, keys); err != nil {
					return err
				}
				if user.IsSuperadmin() {
					return merchantsRepo.AssignAdmin(tx, user.UUID, merchantUUID, i == 0)
				}
				return merchantsRepo.LinkUser(tx, user.UUID, merchantUUID)
			})
			if err != nil {
				return fmt.Errorf("store merchant %q: %w", name, err)
			}

			log.Info("merchant seeded", "name", name, "ansa_merchant_id", created.MerchantID)

			if err := seedCustomerActivity(ctx, client, log, created.MerchantSecretKey); err != nil {
				return fmt.Errorf("seed customers for %q: %w", name, err)
			}
		}

		fmt.Printf("seeded %d merchant(s) with %d customer(s) each for %s\n", seedMerchants, seedCustomers, seedEmail)
		return nil
	},
}

// seedCustomerActivity fans the customers out with bounded concurrency so a
// large seed does not hammer the sandbox.
func seedCustomerActivity(ctx context.Context, client *ansa.Client, log logger.Logger, secretKey string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)

	for i := 0; i < seedCustomers; i++ {
		g.Go(func() error {
			return seedOneCustomer(ctx, client, log, secretKey)
		})
	}
	return g.Wait()
}

// seedOneCustomer runs the canonical activity script: four concurrent
// balance adds, four uses, then a mix of full and partial refunds. The
// resulting derived balance is deterministic, which the dashboard smoke
// checks rely on.
func seedOneCustomer(ctx context.Context, client *ansa.Client, log logger.Logger, secretKey string) error {
	customer, aerr := client.CreateCustomer(ctx, secretKey, ansa.CreateCustomerParams{
		Email:     gofakeit.Email(),
		Phone:     fmt.Sprintf("53055%05d", gofakeit.Number(10000, 99999)),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	})
	if aerr != nil {
		return fmt.Errorf("create customer: %w", aerr)
	}

	method, aerr := client.CreatePaymentMethod(ctx, secretKey, customer.ID)
	if aerr != nil {
		return fmt.Errorf("create payment method: %w", aerr)
	}

	adds, addCtx := errgroup.WithContext(ctx)
	for i := 0; i < 4; i++ {
		adds.Go(func() error {
			_, aerr := client.AddBalance(addCtx, secretKey, customer.ID, method.ID, 5000)
			if aerr != nil {
				return fmt.Errorf("add balance: %w", aerr)
			}
			return nil
		})
	}
	if err := adds.Wait(); err != nil {
		return err
	}

	useAmounts := []int64{1000, 500, 1000, 500}
	useTxIDs := make([]string, 0, len(useAmounts))
	for _, amount := range useAmounts {
		tx, aerr := client.UseBalance(ctx, secretKey, customer.ID, amount, gofakeit.ProductName())
		if aerr != nil {
			return fmt.Errorf("use balance: %w", aerr)
		}
		useTxIDs = append(useTxIDs, tx.ID)
	}

	// full refunds of the first two uses, partial refunds of the last two
	refunds := []struct {
		txID   string
		amount int64
	}{
		{useTxIDs[0], 1000},
		{useTxIDs[1], 500},
		{useTxIDs[2], 500},
		{useTxIDs[3], 100},
	}
	for _, refund := range refunds {
		result, aerr := client.RefundBalance(ctx, secretKey, ansa.RefundBalanceParams{
			TransactionID: refund.txID,
			Amount:        refund.amount,
			Currency:      "USD",
		})
		if aerr != nil {
			return fmt.Errorf("refund balance: %w", aerr)
		}
		if result.Status != "succeeded" {
			return fmt.Errorf("refund %s finished with status %s", result.ID, result.Status)
		}
	}

	log.Info("customer seeded", "customer_id", customer.ID, "email", customer.Email)
	return nil
}

func init() {
	seedMerchantCmd.Flags().StringVar(&seedEmail, "email", "", "dashboard user to link the merchants to (required)")
	seedMerchantCmd.Flags().IntVar(&seedMerchants, "merchants", 1, "number of merchants to create")
	seedMerchantCmd.Flags().IntVar(&seedCustomers, "customers", 5, "number of customers per merchant")
	seedMerchantCmd.MarkFlagRequired("email")
}
