package settlement

import (
	"context"
	"testing"

	"github.com/stashboxhq/stashpay/app/models"
	"github.com/stashboxhq/stashpay/internal/pkg/cache"
)

// clearPlanQuotaCache drops cached lookups so runs against a live redis stay
// independent. Errors are ignored, tests work without a cache server.
func clearPlanQuotaCache(labels ...string) {
	for _, label := range labels {
		_ = cache.Delete("plan_quota:" + label)
	}
}

func TestQuotaForPlan_Defaults(t *testing.T) {
	clearPlanQuotaCache("500MB", "1GB", "2GB", "10GB", "premium")
	svc := NewService(newFakeRepository())

	tests := []struct {
		in   string
		want int64
	}{
		{in: models.PlanSize500MB, want: 500},
		{in: models.PlanSize1GB, want: 1024},
		{in: models.PlanSize2GB, want: 2048},
		{in: " 1GB ", want: 1024},
		{in: "10GB", want: 0},
		{in: "premium", want: 0},
		{in: "", want: 0},
	}

	for _, tt := range tests {
		if got := svc.QuotaForPlan(context.Background(), tt.in); got != tt.want {
			t.Fatalf("QuotaForPlan(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQuotaForPlan_TableRowsOverrideDefaults(t *testing.T) {
	clearPlanQuotaCache("1GB", "10GB")
	t.Cleanup(func() { clearPlanQuotaCache("1GB", "10GB") })

	repo := newFakeRepository()
	repo.planQuotas["10GB"] = 10240
	repo.planQuotas[models.PlanSize1GB] = 2000
	svc := NewService(repo)

	if got := svc.QuotaForPlan(context.Background(), "10GB"); got != 10240 {
		t.Fatalf("expected table row to define 10GB=10240, got %d", got)
	}
	if got := svc.QuotaForPlan(context.Background(), models.PlanSize1GB); got != 2000 {
		t.Fatalf("expected table row to override 1GB default, got %d", got)
	}
}

func TestQuotaForPlan_NeverNegative(t *testing.T) {
	svc := NewService(newFakeRepository())

	for _, label := range []string{"500MB", "1GB", "2GB", "bogus", "", "0MB"} {
		if got := svc.QuotaForPlan(context.Background(), label); got < 0 {
			t.Fatalf("QuotaForPlan(%q) = %d, want non-negative", label, got)
		}
	}
}
