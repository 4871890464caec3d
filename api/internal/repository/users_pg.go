package repository

import (
	"ansadash/api/internal/domain"

	"gorm.io/gorm"
)

type UsersRepo struct {
}

func InitUsersRepo() *UsersRepo {
	return &UsersRepo{}
}

func (r *UsersRepo) FindByUUID(tx *gorm.DB, userUUID string) (*domain.Users, error) {
	var user domain.Users
	return &user, tx.Where(&domain.Users{UUID: userUUID}).First(&user).Error
}

func (r *UsersRepo) FindByEmail(tx *gorm.DB, email string) (*domain.Users, error) {
	var user domain.Users
	return &user, tx.Where(&domain.Users{Email: email}).First(&user).Error
}

func (r *UsersRepo) Create(tx *gorm.DB, user *domain.Users) error {
	return tx.Create(user).Error
}
