package background

import (
	"fmt"
	"sync"
	"time"

	"xestetik/internal/services"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// JobScheduler runs the site's periodic maintenance
type JobScheduler struct {
	scheduler gocron.Scheduler
	qrService services.QRService
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates the scheduler and registers its jobs. A zero
// qrInterval disables the QR refresh job.
func NewJobScheduler(qrService services.QRService, qrInterval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		qrService: qrService,
		jobs:      make(map[string]gocron.Job),
	}
	if err := js.registerJobs(qrInterval); err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

func (js *JobScheduler) Start() {
	zap.L().Info("starting background job scheduler", zap.Int("jobs", js.JobCount()))
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	zap.L().Info("stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) JobCount() int {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return len(js.jobs)
}

func (js *JobScheduler) registerJobs(qrInterval time.Duration) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if qrInterval > 0 {
		// Runs once at start so a fresh deploy has its images
		qrJob, err := js.scheduler.NewJob(
			gocron.DurationJob(qrInterval),
			gocron.NewTask(js.refreshQRCodes),
			gocron.WithName("qr-refresh"),
			gocron.WithStartAt(gocron.WithStartImmediately()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to create qr refresh job: %w", err)
		}
		js.jobs["qr-refresh"] = qrJob
	}

	zap.L().Debug("registered background jobs", zap.Int("count", len(js.jobs)))
	return nil
}

func (js *JobScheduler) refreshQRCodes() {
	written := js.qrService.Generate()
	zap.L().Debug("qr codes refreshed", zap.Int("written", written))
}
