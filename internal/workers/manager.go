package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/parasnikum/DevSync/internal/repositories"
	"github.com/parasnikum/DevSync/internal/services"
	"github.com/parasnikum/DevSync/pkg/config"
	"github.com/parasnikum/DevSync/pkg/logger"
)

// WorkerManager manages multiple workers of different types
type WorkerManager struct {
	workers         []Worker
	jobRepo         *repositories.JobRepository
	leetcodeService *services.LeetCodeService
	wg              sync.WaitGroup
	ctx             context.Context
	cancel          context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(jobRepo *repositories.JobRepository, leetcodeService *services.LeetCodeService) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:         make([]Worker, 0),
		jobRepo:         jobRepo,
		leetcodeService: leetcodeService,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// syncWorkerCount returns the configured LeetCode worker count, with a sane
// floor when the config is unset or invalid
func syncWorkerCount() int {
	count := config.AppConfig.LeetCode.SyncWorkers
	if count <= 0 {
		return 2
	}
	return count
}

// StartAll starts all workers based on the configured counts
func (wm *WorkerManager) StartAll() error {
	leetcodeWorkers := syncWorkerCount()

	logger.Infof("Starting workers - LeetCode: %d", leetcodeWorkers)

	for i := 0; i < leetcodeWorkers; i++ {
		worker := NewLeetCodeWorker(fmt.Sprintf("leetcode-%d", i+1), wm.jobRepo, wm.leetcodeService)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.Errorf("Error stopping worker %s: %v", worker.GetWorkerID(), err)
		}
	}

	// Wait for all workers to finish
	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil {
			logger.Errorf("Worker %s stopped with error: %v", worker.GetWorkerID(), err)
		}
	}()
}

// GetWorkerStatus returns the status of all workers
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool)
	for _, worker := range wm.workers {
		if leetcodeWorker, ok := worker.(*LeetCodeWorker); ok {
			status[worker.GetWorkerID()] = leetcodeWorker.IsRunning()
		} else {
			status[worker.GetWorkerID()] = false
		}
	}
	return status
}
