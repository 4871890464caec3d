package service

import (
	"fmt"
	"time"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/config"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/infra/postgres"
	"ansadash/api/internal/logger"
	"ansadash/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	codeLifetime  = 15 * time.Minute
	signinPurpose = "signin"
)

type SessionsService struct {
	sessions repository.Sessions
	users    repository.Users
	sender   EmailSender
	log      logger.Logger

	signingKey []byte
	lifetime   time.Duration
	baseURL    string
}

func NewSessionsService(sessions repository.Sessions, users repository.Users, sender EmailSender, config *config.Config, l logger.Logger) *SessionsService {
	return &SessionsService{
		sessions:   sessions,
		users:      users,
		sender:     sender,
		log:        l,
		signingKey: []byte(config.Session.SigningKey),
		lifetime:   config.Session.Lifetime,
		baseURL:    config.Api.BaseURL,
	}
}

type signinClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (s *SessionsService) StartSignin(tx *gorm.DB, email string) *apierror.Error {
	user, err := s.users.FindByEmail(tx, email)
	if err != nil {
		if postgres.IsNotFound(err) {
			// don't reveal whether the address exists
			s.log.Debug("signin requested for unknown email")
			return nil
		}
		return apierror.Internal("signin lookup failed", apierror.WithCause(err))
	}

	now := time.Now()
	claims := signinClaims{
		Purpose: signinPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(codeLifetime)),
			ID:        uuid.NewString(),
		},
	}

	code, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return apierror.Internal("sign signin code", apierror.WithCause(err),
			apierror.WithLabel(apierror.LABEL_USER_ID, user.UUID))
	}

	link := fmt.Sprintf("%s/api/auth/callback?code=%s", s.baseURL, code)
	if err := s.sender.SendSigninLink(user.Email, link); err != nil {
		return apierror.Internal("send signin link", apierror.WithCause(err),
			apierror.WithLabel(apierror.LABEL_USER_ID, user.UUID))
	}
	return nil
}

func (s *SessionsService) ExchangeCode(tx *gorm.DB, code string) (*domain.Sessions, *apierror.Error) {
	var claims signinClaims
	_, err := jwt.ParseWithClaims(code, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, apierror.Auth("could not exchange code for session", apierror.WithCause(err))
	}
	if claims.Purpose != signinPurpose || claims.Subject == "" {
		return nil, apierror.Auth("could not exchange code for session")
	}

	session := &domain.Sessions{
		Token:     uuid.NewString(),
		UserUUID:  claims.Subject,
		ExpiresAt: time.Now().Add(s.lifetime),
	}
	if err := s.sessions.Create(tx, session); err != nil {
		return nil, apierror.Internal("create session", apierror.WithCause(err),
			apierror.WithLabel(apierror.LABEL_USER_ID, claims.Subject))
	}
	return session, nil
}

func (s *SessionsService) Get(tx *gorm.DB, token string) (*domain.Sessions, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.sessions.FindByToken(tx, token)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (s *SessionsService) RefreshIfNeeded(tx *gorm.DB, session *domain.Sessions) error {
	remaining := time.Until(session.ExpiresAt)
	if remaining > s.lifetime/2 {
		return nil
	}
	expiresAt := time.Now().Add(s.lifetime)
	if err := s.sessions.Refresh(tx, session.Token, expiresAt); err != nil {
		return err
	}
	session.ExpiresAt = expiresAt
	return nil
}

func (s *SessionsService) Signout(tx *gorm.DB, token string) error {
	return s.sessions.Delete(tx, token)
}

// PurgeExpired drops dead session rows; the app runs it on a timer.
func (s *SessionsService) PurgeExpired(tx *gorm.DB) error {
	return s.sessions.DeleteExpired(tx, time.Now())
}
