package models

import "time"

// PlanQuota maps a plan-size label to the storage quota it credits, so new
// plan sizes can be added with an INSERT instead of a deploy.
type PlanQuota struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlanSize  string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"plan_size"`
	QuotaMB   int64     `gorm:"not null" json:"quota_mb"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
