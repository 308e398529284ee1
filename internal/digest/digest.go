// Package digest pushes a daily "due today" summary to the authorized chat.
package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reugn/go-quartz/job"
	"github.com/reugn/go-quartz/quartz"

	"reminder-bot/internal/model"
	"reminder-bot/internal/task"
	pkgLog "reminder-bot/pkg/log"
	pkgTelegram "reminder-bot/pkg/telegram"
)

// Config holds the digest job settings.
type Config struct {
	// ChatID is the Telegram chat the summary is pushed to.
	ChatID int64
	// Cron is a 6-field quartz cron expression, e.g. "0 0 8 * * *".
	Cron string
	// RunOnStart sends one digest shortly after startup.
	RunOnStart bool
}

// Scheduler runs the recurring due-today summary job.
type Scheduler struct {
	l     pkgLog.Logger
	uc    task.UseCase
	bot   *pkgTelegram.Bot
	cfg   Config
	sched quartz.Scheduler
}

// New creates a new digest Scheduler.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, cfg Config) *Scheduler {
	return &Scheduler{
		l:     l,
		uc:    uc,
		bot:   bot,
		cfg:   cfg,
		sched: quartz.NewStdScheduler(),
	}
}

// Start schedules the recurring job and begins execution. The scheduler
// stops when ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	trigger, err := quartz.NewCronTrigger(s.cfg.Cron)
	if err != nil {
		return fmt.Errorf("invalid digest cron %q: %w", s.cfg.Cron, err)
	}

	s.sched.Start(ctx)

	digestJob := job.NewFunctionJob(func(jobCtx context.Context) (int, error) {
		return 0, s.SendDigest(jobCtx)
	})
	detail := quartz.NewJobDetail(digestJob, quartz.NewJobKey("daily-digest"))
	if err := s.sched.ScheduleJob(detail, trigger); err != nil {
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}

	s.l.Infof(ctx, "digest: scheduled with cron %q", s.cfg.Cron)

	if s.cfg.RunOnStart {
		// Give the rest of the service a moment to come up first.
		time.AfterFunc(2*time.Second, func() {
			if err := s.SendDigest(ctx); err != nil {
				s.l.Errorf(ctx, "digest: startup run failed: %v", err)
			}
		})
	}

	return nil
}

// Stop halts the scheduler. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.sched.Stop()
}

// SendDigest fetches today's tasks and pushes the summary message.
func (s *Scheduler) SendDigest(ctx context.Context) error {
	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", s.cfg.ChatID)}

	out, err := s.uc.DueToday(ctx, sc)
	if err != nil {
		return fmt.Errorf("failed to collect today's tasks: %w", err)
	}

	s.l.Infof(ctx, "digest: sending summary with %d tasks", len(out.Titles))
	return s.bot.SendMessageWithMode(s.cfg.ChatID, FormatDigest(out.Titles), "Markdown")
}

// FormatDigest renders the summary message body.
func FormatDigest(titles []string) string {
	if len(titles) == 0 {
		return "✅ You have no tasks for today!"
	}

	var sb strings.Builder
	sb.WriteString("🗓 *Today's Tasks:*\n")
	for i, title := range titles {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("• ")
		sb.WriteString(title)
	}
	return sb.String()
}
