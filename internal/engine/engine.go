package engine

import (
	"context"
	"log"
	"strconv"
	"time"

	mirrorrepo "mailpilot-backend/internal/mirror/repository"
	statsdomain "mailpilot-backend/internal/stats/domain"
	statsrepo "mailpilot-backend/internal/stats/repository"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
	tenantrepo "mailpilot-backend/internal/tenant/repository"
	"mailpilot-backend/pkg/gmail"
)

// Engine runs the scheduled aggregation cycle: per tenant it replays the
// Gmail history feed since the stored cursor, counts processed messages
// per rule, persists the statistics and advances the cursor. A tenant's
// failure never blocks the remaining tenants.
type Engine struct {
	tenantRepo  tenantrepo.TenantRepository
	ruleRepo    mirrorrepo.RuleRepository
	statRepo    statsrepo.StatisticRepository
	gmailClient gmail.Client
	now         func() time.Time
}

func NewEngine(tenantRepo tenantrepo.TenantRepository, ruleRepo mirrorrepo.RuleRepository, statRepo statsrepo.StatisticRepository, gmailClient gmail.Client) *Engine {
	return &Engine{
		tenantRepo:  tenantRepo,
		ruleRepo:    ruleRepo,
		statRepo:    statRepo,
		gmailClient: gmailClient,
		now:         time.Now,
	}
}

// RunOnce performs one aggregation cycle across all tenants in stable
// (email) order.
func (e *Engine) RunOnce(ctx context.Context) {
	tenants, err := e.tenantRepo.ListAll()
	if err != nil {
		log.Printf("[Engine] Error listing tenants: %v", err)
		return
	}

	for i := range tenants {
		tenant := &tenants[i]
		if err := e.runTenant(ctx, tenant); err != nil {
			// Skip this tenant for now; the next scheduled run retries
			log.Printf("[Engine] Run failed for %s, cursor unchanged: %v", tenant.Email, err)
		}
	}
}

func (e *Engine) runTenant(ctx context.Context, tenant *tenantdomain.Tenant) error {
	rules, err := e.ruleRepo.ListByTenant(tenant.Email)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}

	if !validCursor(tenant.HistoryCursor) {
		// First activation (or corrupt cursor): establish a baseline and
		// never count pre-existing history.
		profile, err := e.gmailClient.GetProfile(ctx, tenant.Credentials())
		if err != nil {
			return err
		}
		cursor := strconv.FormatUint(profile.HistoryID, 10)
		if err := e.tenantRepo.UpdateCursor(tenant.Email, cursor); err != nil {
			return err
		}
		log.Printf("[Engine] Baseline cursor %s set for %s", cursor, tenant.Email)
		return nil
	}

	newCursor, events, err := e.gmailClient.ListHistory(ctx, tenant.Credentials(), tenant.HistoryCursor,
		[]gmail.HistoryEventKind{gmail.LabelAdded, gmail.LabelRemoved})
	if err != nil {
		return err
	}

	counts := Aggregate(rules, events)
	ts := e.now().UTC().Unix()
	records := make([]statsdomain.StatisticRecord, 0, len(rules))
	for _, rule := range rules {
		records = append(records, statsdomain.StatisticRecord{
			RuleRemoteID: rule.RemoteID,
			RuleName:     rule.Name,
			Timestamp:    ts,
			Processed:    counts[rule.RemoteID],
		})
	}

	if err := e.statRepo.RecordRun(tenant.Email, records, newCursor); err != nil {
		return err
	}

	log.Printf("[Engine] Recorded %d rule statistics for %s, cursor %s -> %s",
		len(records), tenant.Email, tenant.HistoryCursor, newCursor)
	return nil
}

// validCursor reports whether the stored cursor is usable. Anything else
// re-enters the baseline path instead of failing the tenant forever.
func validCursor(cursor string) bool {
	if cursor == "" {
		return false
	}
	_, err := strconv.ParseUint(cursor, 10, 64)
	return err == nil
}
