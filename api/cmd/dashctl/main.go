package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ansadash/api/internal/config"
	"ansadash/api/internal/infra/postgres"
	"ansadash/api/internal/logger"

	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Dashboard administration CLI",
	Long:  `Creates dashboard users and seeds sandbox merchants with synthetic activity.`,
}

// setup wires the shared dependencies the subcommands need.
func setup() (*config.Config, *gorm.DB, logger.Logger) {
	config := config.ReadConfig()
	db := postgres.Init(config)
	log := logger.Init(config)
	return config, db, log
}

func init() {
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(seedMerchantCmd)
	rootCmd.AddCommand(fundCustomerCmd)
	rootCmd.AddCommand(resetDbCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
