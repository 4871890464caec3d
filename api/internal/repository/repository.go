package repository

import (
	"time"

	"ansadash/api/internal/domain"

	"gorm.io/gorm"
)

type Users interface {
	FindByUUID(tx *gorm.DB, userUUID string) (*domain.Users, error)
	FindByEmail(tx *gorm.DB, email string) (*domain.Users, error)
	Create(tx *gorm.DB, user *domain.Users) error
}

type Merchants interface {
	// FindWithKeysByUser resolves a regular user's single merchant together
	// with its secret key, through the user_merchants join.
	FindWithKeysByUser(tx *gorm.DB, userUUID string) (*domain.Merchants, error)
	// FindWithKeysByAdmin resolves a superadmin's currently selected merchant
	// through the admin_merchants join.
	FindWithKeysByAdmin(tx *gorm.DB, userUUID string) (*domain.Merchants, error)
	Create(tx *gorm.DB, merchant *domain.Merchants) error
	CreateKeys(tx *gorm.DB, keys *domain.MerchantKeys) error
	LinkUser(tx *gorm.DB, userUUID, merchantUUID string) error
	AssignAdmin(tx *gorm.DB, userUUID, merchantUUID string, selected bool) error
	// SelectAdmin moves the admin's selected flag to the given merchant.
	// ErrRecordNotFound when the merchant is not assigned to the admin.
	SelectAdmin(tx *gorm.DB, userUUID, merchantUUID string) error
}

type Sessions interface {
	Create(tx *gorm.DB, session *domain.Sessions) error
	FindByToken(tx *gorm.DB, token string) (*domain.Sessions, error)
	Refresh(tx *gorm.DB, token string, expiresAt time.Time) error
	Delete(tx *gorm.DB, token string) error
	DeleteExpired(tx *gorm.DB, now time.Time) error
}

type Repositories struct {
	Users     Users
	Merchants Merchants
	Sessions  Sessions
}

func New() *Repositories {
	return &Repositories{
		Users:     InitUsersRepo(),
		Merchants: InitMerchantsRepo(),
		Sessions:  InitSessionsRepo(),
	}
}
