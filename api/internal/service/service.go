package service

import (
	"ansadash/api/internal/apierror"
	"ansadash/api/internal/config"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/logger"
	"ansadash/api/internal/repository"

	"gorm.io/gorm"
)

type Auth interface {
	// ResolveMerchant turns a session into the merchant identity and secret
	// credential every downstream Ansa call needs. One pure core; transport
	// adapters live in the delivery layer.
	ResolveMerchant(tx *gorm.DB, session *domain.Sessions, opts ResolveOptions) (*MerchantCredentials, *apierror.Error)
	// SelectMerchant switches a superadmin's selected merchant. Regular
	// users have exactly one merchant and cannot switch.
	SelectMerchant(tx *gorm.DB, session *domain.Sessions, merchantUUID string) *apierror.Error
}

type Sessions interface {
	// StartSignin issues a one-time sign-in code for the given email and
	// hands it to the email sender. Unknown emails are ignored so the
	// endpoint does not reveal which addresses exist.
	StartSignin(tx *gorm.DB, email string) *apierror.Error
	// ExchangeCode trades a valid sign-in code for a new session.
	ExchangeCode(tx *gorm.DB, code string) (*domain.Sessions, *apierror.Error)
	// Get returns the live session for a token, or nil if missing/expired.
	Get(tx *gorm.DB, token string) (*domain.Sessions, error)
	// RefreshIfNeeded slides the expiry window forward once less than half
	// of the lifetime remains.
	RefreshIfNeeded(tx *gorm.DB, session *domain.Sessions) error
	Signout(tx *gorm.DB, token string) error
	PurgeExpired(tx *gorm.DB) error
}

type Services struct {
	Auth     Auth
	Sessions Sessions
}

func NewServices(db *gorm.DB, l logger.Logger, config *config.Config) *Services {
	repos := repository.New()
	sender := NewLogEmailSender(l)

	return &Services{
		Auth:     NewAuthService(repos.Users, repos.Merchants),
		Sessions: NewSessionsService(repos.Sessions, repos.Users, sender, config, l),
	}
}
