package workers

import (
	"context"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
	"github.com/parasnikum/DevSync/internal/services"
	"github.com/parasnikum/DevSync/pkg/logger"
)

// LeetCodeWorker handles LeetCode sync jobs
type LeetCodeWorker struct {
	*BaseWorker
	jobRepo         *repositories.JobRepository
	leetcodeService *services.LeetCodeService
}

// NewLeetCodeWorker creates a new LeetCode sync worker
func NewLeetCodeWorker(workerID string, jobRepo *repositories.JobRepository, leetcodeService *services.LeetCodeService) *LeetCodeWorker {
	return &LeetCodeWorker{
		BaseWorker:      NewBaseWorker(workerID, models.JobTypeLeetCodeSync),
		jobRepo:         jobRepo,
		leetcodeService: leetcodeService,
	}
}

// Start begins the LeetCode worker process
func (w *LeetCodeWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("LeetCode worker %s started", w.WorkerID)

	for {
		select {
		case <-ctx.Done():
			logger.Infof("LeetCode worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("LeetCode worker %s stopping", w.WorkerID)
			return nil
		default:
			job, err := w.jobRepo.GetNextPendingJob(models.JobTypeLeetCodeSync)
			if err != nil {
				logger.Errorf("LeetCode worker %s error getting job: %v", w.WorkerID, err)
				time.Sleep(5 * time.Second)
				continue
			}

			if job == nil {
				// No jobs available, sleep and try again
				time.Sleep(10 * time.Second)
				continue
			}

			w.processSyncJob(ctx, job)
		}
	}
}

// processSyncJob refreshes the cached stats for the job's target username
func (w *LeetCodeWorker) processSyncJob(ctx context.Context, job *models.Job) {
	logger.Infof("LeetCode worker %s processing job %s for %s", w.WorkerID, job.ID, job.Target)

	job.MarkStarted()
	if err := w.jobRepo.Update(job); err != nil {
		logger.Errorf("LeetCode worker %s error updating job %s: %v", w.WorkerID, job.ID, err)
		return
	}

	if _, err := w.leetcodeService.SyncUser(ctx, job.Target); err != nil {
		logger.Errorf("LeetCode worker %s sync failed for %s: %v", w.WorkerID, job.Target, err)
		job.MarkFailed()
		job.SetError(err.Error())
		if updateErr := w.jobRepo.Update(job); updateErr != nil {
			logger.Errorf("LeetCode worker %s error failing job %s: %v", w.WorkerID, job.ID, updateErr)
		}
		return
	}

	job.MarkCompleted()
	if err := w.jobRepo.Update(job); err != nil {
		logger.Errorf("LeetCode worker %s error completing job %s: %v", w.WorkerID, job.ID, err)
		return
	}

	logger.Infof("LeetCode worker %s completed job %s", w.WorkerID, job.ID)
}
