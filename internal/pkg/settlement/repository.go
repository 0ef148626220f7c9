package settlement

import (
	"context"
	"time"

	"github.com/stashboxhq/stashpay/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the settlement service. All
// operations respect the caller's context deadline.
type Repository interface {
	FindPaymentByProviderID(ctx context.Context, providerPaymentID string) (*models.Payment, error)
	// SettleAndCredit flips the settlement flag and credits the owning
	// account inside one transaction. It reports settled=false when the
	// conditional flag update matched no row, meaning another delivery
	// already settled this payment.
	SettleAndCredit(ctx context.Context, payment *models.Payment, creditMB int64) (account *models.Account, settled bool, err error)
	FindActivePlanQuota(ctx context.Context, planSize string) (*models.PlanQuota, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a settlement repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindPaymentByProviderID(ctx context.Context, providerPaymentID string) (*models.Payment, error) {
	return models.FindPaymentByProviderID(r.db.WithContext(ctx), providerPaymentID)
}

func (r *gormRepository) SettleAndCredit(ctx context.Context, payment *models.Payment, creditMB int64) (*models.Account, bool, error) {
	var account models.Account
	settled := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND settled = ?", payment.ID, false).
			Updates(map[string]interface{}{
				"settled":    true,
				"settled_at": &now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// A concurrent or earlier delivery won the conditional
			// update. Leave the account untouched.
			return nil
		}
		settled = true
		payment.Settled = true
		payment.SettledAt = &now

		if err := tx.Model(&models.Account{}).
			Where("id = ?", payment.AccountID).
			Update("storage_quota_mb", gorm.Expr("COALESCE(storage_quota_mb, 0) + ?", creditMB)).Error; err != nil {
			return err
		}

		return tx.First(&account, payment.AccountID).Error
	})
	if err != nil {
		return nil, false, err
	}
	if !settled {
		return nil, false, nil
	}
	return &account, true, nil
}

func (r *gormRepository) FindActivePlanQuota(ctx context.Context, planSize string) (*models.PlanQuota, error) {
	var pq models.PlanQuota
	err := r.db.WithContext(ctx).
		Where("plan_size = ? AND is_active = ?", planSize, true).
		First(&pq).Error
	if err != nil {
		return nil, err
	}
	return &pq, nil
}
