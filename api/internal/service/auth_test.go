package service

import (
	"errors"
	"testing"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUsersRepo struct {
	users map[string]*domain.Users
	err   error
}

func (s *stubUsersRepo) FindByUUID(tx *gorm.DB, userUUID string) (*domain.Users, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUsersRepo) FindByEmail(tx *gorm.DB, email string) (*domain.Users, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsersRepo) Create(tx *gorm.DB, user *domain.Users) error {
	s.users[user.UUID] = user
	return nil
}

type stubMerchantsRepo struct {
	byUser   map[string]*domain.Merchants
	byAdmin  map[string]*domain.Merchants
	assigned map[string]bool
	err      error

	userCalls   int
	adminCalls  int
	selectCalls int
	selected    string
}

func (s *stubMerchantsRepo) FindWithKeysByUser(tx *gorm.DB, userUUID string) (*domain.Merchants, error) {
	s.userCalls++
	if s.err != nil {
		return nil, s.err
	}
	merchant, ok := s.byUser[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return merchant, nil
}

func (s *stubMerchantsRepo) FindWithKeysByAdmin(tx *gorm.DB, userUUID string) (*domain.Merchants, error) {
	s.adminCalls++
	if s.err != nil {
		return nil, s.err
	}
	merchant, ok := s.byAdmin[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return merchant, nil
}

func (s *stubMerchantsRepo) Create(tx *gorm.DB, merchant *domain.Merchants) error { return nil }
func (s *stubMerchantsRepo) CreateKeys(tx *gorm.DB, keys *domain.MerchantKeys) error {
	return nil
}
func (s *stubMerchantsRepo) LinkUser(tx *gorm.DB, userUUID, merchantUUID string) error { return nil }
func (s *stubMerchantsRepo) AssignAdmin(tx *gorm.DB, userUUID, merchantUUID string, selected bool) error {
	return nil
}
func (s *stubMerchantsRepo) SelectAdmin(tx *gorm.DB, userUUID, merchantUUID string) error {
	s.selectCalls++
	if s.err != nil {
		return s.err
	}
	if !s.assigned[merchantUUID] {
		return gorm.ErrRecordNotFound
	}
	s.selected = merchantUUID
	return nil
}

func merchantWithKeys(secret string) *domain.Merchants {
	return &domain.Merchants{
		UUID:             "mer-uuid",
		AnsaMerchantUUID: "ansa-mer-1",
		AnsaMerchantName: "Coffee Co",
		MerchantKeys: &domain.MerchantKeys{
			MerchantUUID:          "mer-uuid",
			AnsaMerchantSecretKey: secret,
		},
	}
}

func session(userUUID string) *domain.Sessions {
	return &domain.Sessions{Token: "tok", UserUUID: userUUID}
}

func TestResolveMerchantNilSession(t *testing.T) {
	svc := NewAuthService(&stubUsersRepo{}, &stubMerchantsRepo{})

	_, aerr := svc.ResolveMerchant(nil, nil, ResolveOptions{})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_AUTH, aerr.Class)
}

func TestResolveMerchantRegularUser(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Email: "jo@example.com", Role: "member"},
	}}
	merchants := &stubMerchantsRepo{byUser: map[string]*domain.Merchants{
		"user-1": merchantWithKeys("sk_test_123"),
	}}
	svc := NewAuthService(users, merchants)

	creds, aerr := svc.ResolveMerchant(nil, session("user-1"), ResolveOptions{})
	require.Nil(t, aerr)
	assert.Equal(t, "ansa-mer-1", creds.MerchantID)
	assert.Equal(t, "sk_test_123", creds.MerchantSecretKey)
	assert.Equal(t, 1, merchants.userCalls)
	assert.Zero(t, merchants.adminCalls)
}

func TestResolveMerchantSuperadminUsesAdminJoin(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"admin-1": {UUID: "admin-1", Email: "admin@example.com", Role: domain.ROLE_SUPERADMIN},
	}}
	merchants := &stubMerchantsRepo{byAdmin: map[string]*domain.Merchants{
		"admin-1": merchantWithKeys("sk_admin_456"),
	}}
	svc := NewAuthService(users, merchants)

	creds, aerr := svc.ResolveMerchant(nil, session("admin-1"), ResolveOptions{})
	require.Nil(t, aerr)
	assert.Equal(t, "sk_admin_456", creds.MerchantSecretKey)
	assert.Equal(t, 1, merchants.adminCalls)
	assert.Zero(t, merchants.userCalls)
}

func TestResolveMerchantNoLinkIsNotFound(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Role: "member"},
	}}
	svc := NewAuthService(users, &stubMerchantsRepo{})

	_, aerr := svc.ResolveMerchant(nil, session("user-1"), ResolveOptions{})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
}

func TestResolveMerchantNilKeysRowIsNotFound(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Role: "member"},
	}}
	// join matched but the merchant_keys row is gone
	orphan := merchantWithKeys("sk_test_123")
	orphan.MerchantKeys = nil
	merchants := &stubMerchantsRepo{byUser: map[string]*domain.Merchants{"user-1": orphan}}
	svc := NewAuthService(users, merchants)

	_, aerr := svc.ResolveMerchant(nil, session("user-1"), ResolveOptions{})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
}

func TestResolveMerchantMissingKeysIsNotFound(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Role: "member"},
	}}
	noKeys := merchantWithKeys("")
	merchants := &stubMerchantsRepo{byUser: map[string]*domain.Merchants{"user-1": noKeys}}
	svc := NewAuthService(users, merchants)

	_, aerr := svc.ResolveMerchant(nil, session("user-1"), ResolveOptions{})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
}

func TestResolveMerchantRequireSuperadminRejectsMember(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Role: "member"},
	}}
	// even a linked merchant must not leak through the admin gate
	merchants := &stubMerchantsRepo{byUser: map[string]*domain.Merchants{
		"user-1": merchantWithKeys("sk_test_123"),
	}}
	svc := NewAuthService(users, merchants)

	_, aerr := svc.ResolveMerchant(nil, session("user-1"), ResolveOptions{RequireSuperadmin: true})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_AUTH, aerr.Class)
	assert.Zero(t, merchants.userCalls)
	assert.Zero(t, merchants.adminCalls)
}

func TestResolveMerchantStaleSessionIsAuth(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{}}
	svc := NewAuthService(users, &stubMerchantsRepo{})

	_, aerr := svc.ResolveMerchant(nil, session("gone-user"), ResolveOptions{})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_AUTH, aerr.Class)
}

func TestSelectMerchantRejectsMember(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Role: "member"},
	}}
	merchants := &stubMerchantsRepo{assigned: map[string]bool{"mer-2": true}}
	svc := NewAuthService(users, merchants)

	aerr := svc.SelectMerchant(nil, session("user-1"), "mer-2")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_AUTH, aerr.Class)
	assert.Zero(t, merchants.selectCalls)
}

func TestSelectMerchantSwitchesSelected(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"admin-1": {UUID: "admin-1", Role: domain.ROLE_SUPERADMIN},
	}}
	merchants := &stubMerchantsRepo{
		byAdmin:  map[string]*domain.Merchants{"admin-1": merchantWithKeys("sk_admin_456")},
		assigned: map[string]bool{"mer-2": true},
	}
	svc := NewAuthService(users, merchants)

	require.Nil(t, svc.SelectMerchant(nil, session("admin-1"), "mer-2"))
	assert.Equal(t, "mer-2", merchants.selected)
}

func TestSelectMerchantWorksWithNoCurrentSelection(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"admin-1": {UUID: "admin-1", Role: domain.ROLE_SUPERADMIN},
	}}
	// nothing selected yet, so the resolver has nothing to resolve
	merchants := &stubMerchantsRepo{assigned: map[string]bool{"mer-2": true}}
	svc := NewAuthService(users, merchants)

	require.Nil(t, svc.SelectMerchant(nil, session("admin-1"), "mer-2"))
	assert.Equal(t, "mer-2", merchants.selected)
}

func TestSelectMerchantUnassignedIsNotFound(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"admin-1": {UUID: "admin-1", Role: domain.ROLE_SUPERADMIN},
	}}
	merchants := &stubMerchantsRepo{
		byAdmin: map[string]*domain.Merchants{"admin-1": merchantWithKeys("sk_admin_456")},
	}
	svc := NewAuthService(users, merchants)

	aerr := svc.SelectMerchant(nil, session("admin-1"), "mer-unassigned")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
	assert.Empty(t, merchants.selected)
}

func TestResolveMerchantRepoFailureIsInternal(t *testing.T) {
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Role: "member"},
	}}
	merchants := &stubMerchantsRepo{err: errors.New("connection reset")}
	svc := NewAuthService(users, merchants)

	_, aerr := svc.ResolveMerchant(nil, session("user-1"), ResolveOptions{})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_INTERNAL, aerr.Class)
	assert.ErrorContains(t, aerr.Cause, "connection reset")
}
