package repository

import (
	"ansadash/api/internal/domain"

	"gorm.io/gorm"
)

type MerchantsRepo struct {
}

func InitMerchantsRepo() *MerchantsRepo {
	return &MerchantsRepo{}
}

func (r *MerchantsRepo) FindWithKeysByUser(tx *gorm.DB, userUUID string) (*domain.Merchants, error) {
	var merchant domain.Merchants
	err := tx.
		Joins("JOIN user_merchants ON user_merchants.merchant_uuid = merchants.uuid").
		Where("user_merchants.user_uuid = ?", userUUID).
		Preload("MerchantKeys").
		First(&merchant).Error
	return &merchant, err
}

func (r *MerchantsRepo) FindWithKeysByAdmin(tx *gorm.DB, userUUID string) (*domain.Merchants, error) {
	var merchant domain.Merchants
	err := tx.
		Joins("JOIN admin_merchants ON admin_merchants.merchant_uuid = merchants.uuid").
		Where("admin_merchants.user_uuid = ? AND admin_merchants.selected", userUUID).
		Preload("MerchantKeys").
		First(&merchant).Error
	return &merchant, err
}

func (r *MerchantsRepo) Create(tx *gorm.DB, merchant *domain.Merchants) error {
	return tx.Create(merchant).Error
}

func (r *MerchantsRepo) CreateKeys(tx *gorm.DB, keys *domain.MerchantKeys) error {
	return tx.Create(keys).Error
}

func (r *MerchantsRepo) LinkUser(tx *gorm.DB, userUUID, merchantUUID string) error {
	return tx.Create(&domain.UserMerchants{UserUUID: userUUID, MerchantUUID: merchantUUID}).Error
}

func (r *MerchantsRepo) AssignAdmin(tx *gorm.DB, userUUID, merchantUUID string, selected bool) error {
	return tx.Create(&domain.AdminMerchants{UserUUID: userUUID, MerchantUUID: merchantUUID, Selected: selected}).Error
}

func (r *MerchantsRepo) SelectAdmin(tx *gorm.DB, userUUID, merchantUUID string) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.AdminMerchants{}).
			Where("user_uuid = ?", userUUID).
			Update("selected", false).Error
		if err != nil {
			return err
		}

		res := tx.Model(&domain.AdminMerchants{}).
			Where("user_uuid = ? AND merchant_uuid = ?", userUUID, merchantUUID).
			Update("selected", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
