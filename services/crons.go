// Package services hosts the background jobs for the Sociable API
package services

import (
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sociable/sociableapi/api/admin"
	"github.com/sociable/sociableapi/api/auth"
	"github.com/sociable/sociableapi/config"
	"github.com/sociable/sociableapi/database"
	"github.com/sociable/sociableapi/shared/zaplogger"
)

// sweeper is implemented by session stores that need periodic eviction.
// The redis store expires keys on its own and does not implement it.
type sweeper interface {
	Sweep() int
}

type CronService struct {
	cfg          *config.Config
	c            *cron.Cron
	sessions     auth.SessionStore
	adminService *admin.Service
	provider     *database.Provider
}

func NewCronService(cfg *config.Config, sessions auth.SessionStore, adminService *admin.Service, provider *database.Provider) *CronService {
	return &CronService{
		cfg:          cfg,
		c:            cron.New(),
		sessions:     sessions,
		adminService: adminService,
		provider:     provider,
	}
}

func (cs *CronService) Start() {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing CronService")

	cs.addScheduledJob("Session Sweep Job", cs.sessionSweepJob, "0 * * * *")    // Hourly
	cs.addScheduledJob("Stats Snapshot Job", cs.statsSnapshotJob, "5 0 * * *") // Once at 00:05

	cs.c.Start()
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("Executing scheduled job: ")
		zaplogger.Info("  >> job  : " + name)
		zaplogger.Info("  >> time : " + time.Now().Format("15:04:05"))
		job()
	})
	if err != nil {
		zaplogger.Error("Failed to schedule job")
		zaplogger.Error("  >> job  : " + name)
		zaplogger.Error("  >> error: " + err.Error())
		return
	}
	zaplogger.Info("  * Scheduled job added: " + name)
}

func (cs *CronService) sessionSweepJob() {
	s, ok := cs.sessions.(sweeper)
	if !ok {
		return
	}

	removed := s.Sweep()
	zaplogger.Info("Session sweep complete")
	zaplogger.Info("  * removed    : " + strconv.Itoa(removed))
}

func (cs *CronService) statsSnapshotJob() {
	if !cs.provider.Ready() {
		return
	}

	snapshot, err := cs.adminService.Snapshot()
	if err != nil {
		zaplogger.Error("Stats snapshot failed")
		zaplogger.Error("  * error    : " + err.Error())
		return
	}

	zaplogger.Info("Stats snapshot recorded")
	zaplogger.Info("  * id    : " + strconv.FormatUint(uint64(snapshot.ID), 10))
}
