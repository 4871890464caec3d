package main

import (
	"testing"

	"ansadash/api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fundUsersStub struct {
	byEmail map[string]*domain.Users
}

func (s *fundUsersStub) FindByUUID(tx *gorm.DB, userUUID string) (*domain.Users, error) {
	for _, user := range s.byEmail {
		if user.UUID == userUUID {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fundUsersStub) FindByEmail(tx *gorm.DB, email string) (*domain.Users, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *fundUsersStub) Create(tx *gorm.DB, user *domain.Users) error { return nil }

type fundMerchantsStub struct {
	byUser  map[string]*domain.Merchants
	byAdmin map[string]*domain.Merchants

	userCalls  int
	adminCalls int
}

func (s *fundMerchantsStub) FindWithKeysByUser(tx *gorm.DB, userUUID string) (*domain.Merchants, error) {
	s.userCalls++
	merchant, ok := s.byUser[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return merchant, nil
}

func (s *fundMerchantsStub) FindWithKeysByAdmin(tx *gorm.DB, userUUID string) (*domain.Merchants, error) {
	s.adminCalls++
	merchant, ok := s.byAdmin[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return merchant, nil
}

func (s *fundMerchantsStub) Create(tx *gorm.DB, merchant *domain.Merchants) error    { return nil }
func (s *fundMerchantsStub) CreateKeys(tx *gorm.DB, keys *domain.MerchantKeys) error { return nil }
func (s *fundMerchantsStub) LinkUser(tx *gorm.DB, userUUID, merchantUUID string) error {
	return nil
}
func (s *fundMerchantsStub) AssignAdmin(tx *gorm.DB, userUUID, merchantUUID string, selected bool) error {
	return nil
}
func (s *fundMerchantsStub) SelectAdmin(tx *gorm.DB, userUUID, merchantUUID string) error {
	return nil
}

func fundMerchant(secret string) *domain.Merchants {
	merchant := &domain.Merchants{
		UUID:             "mer-uuid",
		AnsaMerchantUUID: "ansa-mer-1",
		AnsaMerchantName: "Coffee Co",
	}
	if secret != "" {
		merchant.MerchantKeys = &domain.MerchantKeys{
			MerchantUUID:          "mer-uuid",
			AnsaMerchantSecretKey: secret,
		}
	}
	return merchant
}

func TestFundingCredentialsMember(t *testing.T) {
	users := &fundUsersStub{byEmail: map[string]*domain.Users{
		"jo@example.com": {UUID: "user-1", Email: "jo@example.com", Role: "member"},
	}}
	merchants := &fundMerchantsStub{byUser: map[string]*domain.Merchants{
		"user-1": fundMerchant("sk_test_123"),
	}}

	creds, err := fundingCredentials(nil, users, merchants, "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ansa-mer-1", creds.MerchantID)
	assert.Equal(t, "sk_test_123", creds.MerchantSecretKey)
}

func TestFundingCredentialsSuperadminUsesAdminJoin(t *testing.T) {
	users := &fundUsersStub{byEmail: map[string]*domain.Users{
		"admin@example.com": {UUID: "admin-1", Email: "admin@example.com", Role: domain.ROLE_SUPERADMIN},
	}}
	merchants := &fundMerchantsStub{byAdmin: map[string]*domain.Merchants{
		"admin-1": fundMerchant("sk_admin_456"),
	}}

	creds, err := fundingCredentials(nil, users, merchants, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sk_admin_456", creds.MerchantSecretKey)
	assert.Equal(t, 1, merchants.adminCalls)
	assert.Zero(t, merchants.userCalls)
}

func TestFundingCredentialsMissingKeysRowErrors(t *testing.T) {
	// merchant row loads fine but the keys row was deleted
	users := &fundUsersStub{byEmail: map[string]*domain.Users{
		"jo@example.com": {UUID: "user-1", Email: "jo@example.com", Role: "member"},
	}}
	merchants := &fundMerchantsStub{byUser: map[string]*domain.Merchants{
		"user-1": fundMerchant(""),
	}}

	_, err := fundingCredentials(nil, users, merchants, "jo@example.com")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMsgMerchantKeys)
}

func TestFundingCredentialsUnknownEmailErrors(t *testing.T) {
	users := &fundUsersStub{byEmail: map[string]*domain.Users{}}

	_, err := fundingCredentials(nil, users, &fundMerchantsStub{}, "ghost@example.com")
	require.Error(t, err)
	assert.ErrorContains(t, err, "ghost@example.com")
}
