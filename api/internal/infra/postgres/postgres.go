package postgres

import (
	"fmt"

	"ansadash/api/internal/config"
	"ansadash/api/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(config *config.Config) *gorm.DB {
	dbConfig := config.Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s", dbConfig.Host, dbConfig.User, dbConfig.Password, dbConfig.DbName, dbConfig.Port, dbConfig.SslMode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("Gorm error: " + err.Error())
	}

	if err := Migrate(db); err != nil {
		panic("Auto migrate error: " + err.Error())
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Users{},
		&domain.Merchants{},
		&domain.MerchantKeys{},
		&domain.UserMerchants{},
		&domain.AdminMerchants{},
		&domain.Sessions{},
	)
}

func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&domain.Users{},
		&domain.Merchants{},
		&domain.MerchantKeys{},
		&domain.UserMerchants{},
		&domain.AdminMerchants{},
		&domain.Sessions{},
	)
}
