package usage

import (
	"context"
	"log/slog"
	"time"

	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// ResetInterval is how often the reset task scans for elapsed periods.
const ResetInterval = 24 * time.Hour

// ResetTask advances elapsed free-plan billing periods. Pro and custom plans
// are advanced by the billing provider's invoice signal, not by this task.
// All pods run the task; the update is conditional so replicas do not
// double-reset.
type ResetTask struct {
	service *Service

	cancel context.CancelFunc
	done   chan struct{}
}

// NewResetTask creates the period reset task.
func NewResetTask(service *Service) *ResetTask {
	return &ResetTask{service: service}
}

// Start launches the background reset loop.
func (t *ResetTask) Start(ctx context.Context) {
	if t.cancel != nil {
		return
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})

	go t.run(ctx)

	slog.Info("Usage period reset task started", "interval", ResetInterval)
}

// Stop signals the loop to exit and waits for it to finish.
func (t *ResetTask) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	slog.Info("Usage period reset task stopped")
}

func (t *ResetTask) run(ctx context.Context) {
	defer close(t.done)

	t.resetOnce(ctx)

	ticker := time.NewTicker(ResetInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.resetOnce(ctx)
		}
	}
}

func (t *ResetTask) resetOnce(ctx context.Context) {
	count, err := t.service.ResetDuePeriods(ctx)
	if err != nil {
		slog.Error("Usage period reset failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Usage periods reset", "count", count)
	}
}

// ResetDuePeriods zeroes counters and advances the period for every free-plan
// tenant whose period has elapsed. Returns the number of tenants reset.
func (s *Service) ResetDuePeriods(ctx context.Context) (int, error) {
	now := time.Now()
	due, err := s.client.UsageLimit.Query().
		Where(
			usagelimit.PlanEQ(usagelimit.PlanFree),
			usagelimit.PeriodEndLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, err
	}

	reset := 0
	for _, limits := range due {
		// Conditional on the old period end so concurrent replicas reset at
		// most once.
		n, err := s.client.UsageLimit.Update().
			Where(
				usagelimit.IDEQ(limits.ID),
				usagelimit.PeriodEndEQ(limits.PeriodEnd),
			).
			SetActionsUsedThisPeriod(0).
			SetOverageActionsThisPeriod(0).
			SetPeriodStart(now).
			SetPeriodEnd(now.Add(PeriodLength)).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to reset usage period",
				"tenant_id", limits.TenantID, "error", err)
			continue
		}
		reset += n
	}
	return reset, nil
}
