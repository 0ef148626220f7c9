package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan sizes sold at checkout. The plan_quotas table may carry additional
// sizes beyond these.
const (
	PlanSize500MB = "500MB"
	PlanSize1GB   = "1GB"
	PlanSize2GB   = "2GB"
)

// Payment is a storage top-up purchase. Rows are created by the checkout
// subsystem when the provider payment is initiated; this service flips
// Settled exactly once when the matching webhook arrives.
type Payment struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UUID              string     `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	ProviderPaymentID string     `gorm:"type:varchar(191);uniqueIndex;not null" json:"provider_payment_id"`
	AmountMinor       int64      `gorm:"not null;default:0" json:"amount_minor"`
	PlanSize          string     `gorm:"type:varchar(32);not null" json:"plan_size"`
	Settled           bool       `gorm:"default:false;index" json:"settled"`
	SettledAt         *time.Time `gorm:"type:timestamp;default:null" json:"settled_at,omitempty"`
	AccountID         uint       `gorm:"not null;index" json:"account_id"`
	Account           Account    `gorm:"foreignKey:AccountID" json:"-"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate is called before a new record is inserted
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

func FindPaymentByProviderID(db *gorm.DB, providerPaymentID string) (*Payment, error) {
	var payment Payment
	result := db.Where("provider_payment_id = ?", providerPaymentID).First(&payment)
	if result.Error != nil {
		return nil, result.Error
	}
	return &payment, nil
}
