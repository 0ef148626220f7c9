package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Account is a StashBox customer account. Accounts are created by the signup
// subsystem; this service only credits StorageQuotaMB after a settled payment.
type Account struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email          string    `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	StorageQuotaMB *int64    `gorm:"type:bigint;default:null" json:"storage_quota_mb"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Account) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// QuotaMB returns the current storage quota, treating a never-credited
// (NULL) quota as zero.
func (a *Account) QuotaMB() int64 {
	if a.StorageQuotaMB == nil {
		return 0
	}
	return *a.StorageQuotaMB
}

func FindAccountByID(db *gorm.DB, id uint) (*Account, error) {
	var account Account
	result := db.First(&account, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}
