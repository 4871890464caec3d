package service

import (
	"strings"
	"testing"
	"time"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/config"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubSessionsRepo struct {
	sessions map[string]*domain.Sessions
}

func newStubSessionsRepo() *stubSessionsRepo {
	return &stubSessionsRepo{sessions: map[string]*domain.Sessions{}}
}

func (s *stubSessionsRepo) Create(tx *gorm.DB, session *domain.Sessions) error {
	s.sessions[session.Token] = session
	return nil
}

func (s *stubSessionsRepo) FindByToken(tx *gorm.DB, token string) (*domain.Sessions, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (s *stubSessionsRepo) Refresh(tx *gorm.DB, token string, expiresAt time.Time) error {
	if session, ok := s.sessions[token]; ok {
		session.ExpiresAt = expiresAt
	}
	return nil
}

func (s *stubSessionsRepo) Delete(tx *gorm.DB, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubSessionsRepo) DeleteExpired(tx *gorm.DB, now time.Time) error {
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
		}
	}
	return nil
}

type captureSender struct {
	email string
	link  string
	sent  int
}

func (s *captureSender) SendSigninLink(email, link string) error {
	s.email = email
	s.link = link
	s.sent++
	return nil
}

func testSessionsService(t *testing.T) (*SessionsService, *stubSessionsRepo, *stubUsersRepo, *captureSender) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.SigningKey = "test-signing-key"
	cfg.Session.Lifetime = 168 * time.Hour
	cfg.Api.BaseURL = "http://localhost:8080"

	sessions := newStubSessionsRepo()
	users := &stubUsersRepo{users: map[string]*domain.Users{
		"user-1": {UUID: "user-1", Email: "jo@example.com"},
	}}
	sender := &captureSender{}

	svc := NewSessionsService(sessions, users, sender, cfg, logger.Init(cfg))
	return svc, sessions, users, sender
}

func codeFromLink(t *testing.T, link string) string {
	t.Helper()
	const marker = "?code="
	idx := strings.Index(link, marker)
	require.NotEqual(t, -1, idx, "no code in link %q", link)
	return link[idx+len(marker):]
}

func TestSigninRoundTrip(t *testing.T) {
	svc, sessions, _, sender := testSessionsService(t)

	aerr := svc.StartSignin(nil, "jo@example.com")
	require.Nil(t, aerr)
	require.Equal(t, 1, sender.sent)
	assert.Equal(t, "jo@example.com", sender.email)

	session, aerr := svc.ExchangeCode(nil, codeFromLink(t, sender.link))
	require.Nil(t, aerr)
	assert.Equal(t, "user-1", session.UserUUID)
	assert.Contains(t, sessions.sessions, session.Token)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), session.ExpiresAt, time.Minute)
}

func TestSigninUnknownEmailIsSilentlyIgnored(t *testing.T) {
	svc, _, _, sender := testSessionsService(t)

	aerr := svc.StartSignin(nil, "stranger@example.com")
	require.Nil(t, aerr)
	assert.Zero(t, sender.sent)
}

func TestExchangeGarbageCodeIsAuthError(t *testing.T) {
	svc, _, _, _ := testSessionsService(t)

	_, aerr := svc.ExchangeCode(nil, "not-a-jwt")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_AUTH, aerr.Class)
}

func TestGetMissingOrExpiredSessionIsNil(t *testing.T) {
	svc, sessions, _, _ := testSessionsService(t)

	session, err := svc.Get(nil, "")
	require.NoError(t, err)
	assert.Nil(t, session)

	session, err = svc.Get(nil, "unknown-token")
	require.NoError(t, err)
	assert.Nil(t, session)

	sessions.sessions["stale"] = &domain.Sessions{
		Token:     "stale",
		UserUUID:  "user-1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	session, err = svc.Get(nil, "stale")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRefreshOnlyWhenPastHalfLife(t *testing.T) {
	svc, sessions, _, _ := testSessionsService(t)

	fresh := &domain.Sessions{
		Token:     "fresh",
		UserUUID:  "user-1",
		ExpiresAt: time.Now().Add(167 * time.Hour),
	}
	sessions.sessions["fresh"] = fresh
	before := fresh.ExpiresAt
	require.NoError(t, svc.RefreshIfNeeded(nil, fresh))
	assert.Equal(t, before, fresh.ExpiresAt)

	aging := &domain.Sessions{
		Token:     "aging",
		UserUUID:  "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	sessions.sessions["aging"] = aging
	require.NoError(t, svc.RefreshIfNeeded(nil, aging))
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), aging.ExpiresAt, time.Minute)
}

func TestPurgeExpiredDropsOnlyDeadSessions(t *testing.T) {
	svc, sessions, _, _ := testSessionsService(t)

	sessions.sessions["dead"] = &domain.Sessions{
		Token: "dead", UserUUID: "user-1", ExpiresAt: time.Now().Add(-time.Minute),
	}
	sessions.sessions["live"] = &domain.Sessions{
		Token: "live", UserUUID: "user-1", ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, svc.PurgeExpired(nil))
	assert.NotContains(t, sessions.sessions, "dead")
	assert.Contains(t, sessions.sessions, "live")
}

func TestSignoutDeletesSession(t *testing.T) {
	svc, sessions, _, _ := testSessionsService(t)

	sessions.sessions["tok"] = &domain.Sessions{Token: "tok", UserUUID: "user-1"}
	require.NoError(t, svc.Signout(nil, "tok"))
	assert.NotContains(t, sessions.sessions, "tok")
}
