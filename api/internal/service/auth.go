package service

import (
	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/infra/postgres"
	"ansadash/api/internal/repository"

	"gorm.io/gorm"
)

type ResolveOptions struct {
	RequireSuperadmin bool
}

// MerchantCredentials is the one capability every downstream call needs:
// which merchant the caller acts as, and the secret to prove it to Ansa.
type MerchantCredentials struct {
	MerchantID        string
	MerchantSecretKey string
}

type AuthService struct {
	users     repository.Users
	merchants repository.Merchants
}

func NewAuthService(users repository.Users, merchants repository.Merchants) *AuthService {
	return &AuthService{users: users, merchants: merchants}
}

func dbInternal(err error, userUUID string) *apierror.Error {
	opts := []apierror.Option{
		apierror.WithCause(err),
		apierror.WithLabel(apierror.LABEL_USER_ID, userUUID),
	}
	if code := postgres.ErrorCode(err); code != "" {
		opts = append(opts, apierror.WithLabel(apierror.LABEL_PG_ERROR_CODE, code))
	}
	return apierror.Internal(domain.ErrMsgMerchantInfo, opts...)
}

// ResolveMerchant resolves a session into merchant credentials. Superadmins
// are looked up through the admin_merchants join, regular users through
// user_merchants. A session with no reachable credential resolves to
// NOT_FOUND, never to a silent success. No caching: every call re-resolves.
func (s *AuthService) ResolveMerchant(tx *gorm.DB, session *domain.Sessions, opts ResolveOptions) (*MerchantCredentials, *apierror.Error) {
	if session == nil {
		return nil, apierror.Auth(domain.ErrMsgNoSession)
	}

	user, err := s.users.FindByUUID(tx, session.UserUUID)
	if err != nil {
		if postgres.IsNotFound(err) {
			// session outlived its user row
			return nil, apierror.Auth(domain.ErrMsgNoSession,
				apierror.WithLabel(apierror.LABEL_USER_ID, session.UserUUID))
		}
		return nil, dbInternal(err, session.UserUUID)
	}

	if opts.RequireSuperadmin && !user.IsSuperadmin() {
		return nil, apierror.Auth(domain.ErrMsgSuperadminRequired,
			apierror.WithLabel(apierror.LABEL_USER_ID, user.UUID))
	}

	var merchant *domain.Merchants
	if user.IsSuperadmin() {
		merchant, err = s.merchants.FindWithKeysByAdmin(tx, user.UUID)
	} else {
		merchant, err = s.merchants.FindWithKeysByUser(tx, user.UUID)
	}

	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, apierror.NotFound(domain.ErrMsgMerchantKeys,
				apierror.WithLabel(apierror.LABEL_USER_ID, user.UUID))
		}
		return nil, dbInternal(err, user.UUID)
	}

	if merchant.MerchantKeys == nil || merchant.MerchantKeys.AnsaMerchantSecretKey == "" {
		return nil, apierror.NotFound(domain.ErrMsgMerchantKeys,
			apierror.WithLabel(apierror.LABEL_USER_ID, user.UUID),
			apierror.WithLabel(apierror.LABEL_MERCHANT_ID, merchant.AnsaMerchantUUID))
	}

	return &MerchantCredentials{
		MerchantID:        merchant.AnsaMerchantUUID,
		MerchantSecretKey: merchant.MerchantKeys.AnsaMerchantSecretKey,
	}, nil
}

// SelectMerchant moves a superadmin's selected flag to another assigned
// merchant. The superadmin gate runs through ResolveMerchant; a NOT_FOUND
// from it only means no merchant is currently selected, which must not block
// selecting one.
func (s *AuthService) SelectMerchant(tx *gorm.DB, session *domain.Sessions, merchantUUID string) *apierror.Error {
	if _, aerr := s.ResolveMerchant(tx, session, ResolveOptions{RequireSuperadmin: true}); aerr != nil {
		if aerr.Class != apierror.CLASS_NOT_FOUND {
			return aerr
		}
	}

	if err := s.merchants.SelectAdmin(tx, session.UserUUID, merchantUUID); err != nil {
		if postgres.IsNotFound(err) {
			return apierror.NotFound(domain.ErrMsgMerchantNotAssigned,
				apierror.WithLabel(apierror.LABEL_USER_ID, session.UserUUID),
				apierror.WithLabel(apierror.LABEL_MERCHANT_ID, merchantUUID))
		}
		return dbInternal(err, session.UserUUID)
	}
	return nil
}
