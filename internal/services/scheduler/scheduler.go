package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/pkg/clock"
	"github.com/fitcall/backend/repository"
)

// Scheduler issues the daily round of calls: every activity in the catalog is
// forked into a pending call for every active user once per day.
type Scheduler struct {
	calls      repository.CallRepository
	users      repository.UserRepository
	activities repository.ActivityRepository
	clock      clock.Clock
	cron       *cron.Cron
	spec       string
	logger     *zap.Logger
}

func New(
	calls repository.CallRepository,
	users repository.UserRepository,
	activities repository.ActivityRepository,
	clk clock.Clock,
	spec string,
	logger *zap.Logger,
) *Scheduler {
	if clk == nil {
		clk = clock.System()
	}
	if spec == "" {
		spec = "0 0 0 * * *"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		calls:      calls,
		users:      users,
		activities: activities,
		clock:      clk,
		cron:       cron.New(cron.WithSeconds()),
		spec:       spec,
		logger:     logger,
	}
}

// Start registers the cron entry and launches the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.IssueDailyCalls(ctx); err != nil {
			s.logger.Error("daily call issuance failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("call scheduler started", zap.String("schedule", s.spec))
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("call scheduler stopped")
}

// IssueDailyCalls creates today's pending calls. Failures on individual rows
// are logged and skipped so one bad user does not starve the rest.
func (s *Scheduler) IssueDailyCalls(ctx context.Context) error {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		return nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	today := s.clock.Now().Format("2006-01-02")
	var issued int
	for _, user := range users {
		if !user.IsActive() {
			continue
		}
		for _, activity := range activities {
			call := &domain.Call{
				UserID:      user.ID,
				CallName:    activity.Name,
				Description: activity.Description,
				CallDate:    today,
				Status:      domain.CallStatusPending,
			}
			if _, err := s.calls.Create(ctx, call); err != nil {
				s.logger.Warn("failed to issue call",
					zap.Int64("user_id", user.ID),
					zap.String("activity", activity.Name),
					zap.Error(err))
				continue
			}
			issued++
		}
	}

	s.logger.Info("daily calls issued", zap.String("date", today), zap.Int("count", issued))
	return nil
}
