package settlement

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/stashboxhq/stashpay/app/models"
	"github.com/stashboxhq/stashpay/internal/pkg/cache"
	"gorm.io/gorm"
)

// defaultPlanQuotas covers the plan sizes sold at launch. Active rows in the
// plan_quotas table take precedence so new sizes ship without a deploy.
var defaultPlanQuotas = map[string]int64{
	models.PlanSize500MB: 500,
	models.PlanSize1GB:   1024,
	models.PlanSize2GB:   2048,
}

const planQuotaCacheTTL = 5 * time.Minute

// QuotaForPlan returns the storage credit in MB for a plan-size label. It is
// total: unknown labels credit 0 and log a warning.
func (s *Service) QuotaForPlan(ctx context.Context, planSize string) int64 {
	label := strings.TrimSpace(planSize)
	if label == "" {
		log.Printf("empty plan size, crediting 0 MB")
		return 0
	}

	cacheKey := "plan_quota:" + label
	if mb, err := cache.GetInt(cacheKey); err == nil {
		return int64(mb)
	}

	pq, err := s.repo.FindActivePlanQuota(ctx, label)
	if err == nil {
		_ = cache.Set(cacheKey, pq.QuotaMB, planQuotaCacheTTL)
		return pq.QuotaMB
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// Lookup failed, fall back to the built-in table rather than
		// failing the settlement.
		log.Printf("plan quota lookup failed for %q: %v", label, err)
	}

	if mb, ok := defaultPlanQuotas[label]; ok {
		return mb
	}

	log.Printf("unknown plan size %q, crediting 0 MB", label)
	return 0
}
