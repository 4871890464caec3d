package repository

import (
	"time"

	"ansadash/api/internal/domain"

	"gorm.io/gorm"
)

type SessionsRepo struct {
}

func InitSessionsRepo() *SessionsRepo {
	return &SessionsRepo{}
}

func (r *SessionsRepo) Create(tx *gorm.DB, session *domain.Sessions) error {
	return tx.Create(session).Error
}

func (r *SessionsRepo) FindByToken(tx *gorm.DB, token string) (*domain.Sessions, error) {
	var session domain.Sessions
	return &session, tx.Where(&domain.Sessions{Token: token}).First(&session).Error
}

func (r *SessionsRepo) Refresh(tx *gorm.DB, token string, expiresAt time.Time) error {
	return tx.Model(&domain.Sessions{}).Where("token = ?", token).Update("expires_at", expiresAt).Error
}

func (r *SessionsRepo) Delete(tx *gorm.DB, token string) error {
	return tx.Delete(&domain.Sessions{}, "token = ?", token).Error
}

func (r *SessionsRepo) DeleteExpired(tx *gorm.DB, now time.Time) error {
	return tx.Delete(&domain.Sessions{}, "expires_at < ?", now).Error
}
