package domain

type Merchants struct {
	Model
	UUID             string        `gorm:"primaryKey;size:36"`
	AnsaMerchantUUID string        `gorm:"uniqueIndex;size:36;not null"`
	AnsaMerchantName string        `gorm:"size:64;not null"`
	MerchantKeys     *MerchantKeys `gorm:"foreignKey:MerchantUUID;references:UUID"`
}

// MerchantKeys holds the bearer credential used server-side against the Ansa
// API. Rows in this table must never reach the browser.
type MerchantKeys struct {
	Model
	ID                    uint   `gorm:"primaryKey"`
	MerchantUUID          string `gorm:"uniqueIndex;size:36;not null"`
	AnsaMerchantSecretKey string `gorm:"size:128;not null"`
}

// UserMerchants links a regular user to exactly one merchant.
type UserMerchants struct {
	Model
	ID           uint   `gorm:"primaryKey"`
	UserUUID     string `gorm:"uniqueIndex;size:36;not null"`
	MerchantUUID string `gorm:"size:36;not null"`
}

// AdminMerchants links a superadmin to any number of merchants. Selected marks
// the one the admin currently acts as.
type AdminMerchants struct {
	Model
	ID           uint   `gorm:"primaryKey"`
	UserUUID     string `gorm:"uniqueIndex:idx_admin_user_merchant;size:36;not null"`
	MerchantUUID string `gorm:"uniqueIndex:idx_admin_user_merchant;size:36;not null"`
	Selected     bool
}
