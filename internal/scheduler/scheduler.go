package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pharmachain-backend/internal/regulator"
	"pharmachain-backend/internal/store"
)

const snapshotKey = "regulatorReportSnapshots"

// ReportSnapshot is one archived compliance report, written by the daily
// job so regulators keep a trail even when nobody downloads a report.
type ReportSnapshot struct {
	GeneratedAt string `json:"generatedAt"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Report      string `json:"report"`
}

// Scheduler runs the periodic compliance-report snapshot.
type Scheduler struct {
	cron   *cron.Cron
	svc    *regulator.Service
	store  store.Store
	spec   string
	logger *zap.Logger
}

func New(spec string, svc *regulator.Service, s store.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		store:  s,
		spec:   spec,
		logger: logger,
	}
}

func (s *Scheduler) Start() {
	if s.spec == "" {
		return
	}
	s.logger.Info("starting report snapshot scheduler", zap.String("cron", s.spec))

	if _, err := s.cron.AddFunc(s.spec, s.snapshotReport); err != nil {
		s.logger.Error("failed to schedule report snapshot", zap.Error(err))
		return
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// snapshotReport archives the trailing 30 days.
func (s *Scheduler) snapshotReport() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()
	start := now.AddDate(0, 0, -30).Format("2006-01-02")
	end := now.Format("2006-01-02")

	text, _, err := s.svc.Report(ctx, start, end)
	if err != nil {
		s.logger.Error("report snapshot failed", zap.Error(err))
		return
	}

	snapshots := store.Load(ctx, s.store, snapshotKey, []ReportSnapshot{})
	snapshots = append(snapshots, ReportSnapshot{
		GeneratedAt: now.Format(time.RFC3339),
		StartDate:   start,
		EndDate:     end,
		Report:      text,
	})
	if err := store.Save(ctx, s.store, snapshotKey, snapshots); err != nil {
		s.logger.Error("report snapshot could not be persisted", zap.Error(err))
		return
	}

	s.logger.Info("report snapshot archived", zap.String("period", start+" to "+end))
}
