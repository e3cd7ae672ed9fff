package services

import (
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
	"github.com/parasnikum/DevSync/pkg/config"
	"github.com/parasnikum/DevSync/pkg/logger"
)

type SchedulerService struct {
	jobRepo         *repositories.JobRepository
	leetcodeService *LeetCodeService
}

func NewSchedulerService(jobRepo *repositories.JobRepository, leetcodeService *LeetCodeService) *SchedulerService {
	return &SchedulerService{
		jobRepo:         jobRepo,
		leetcodeService: leetcodeService,
	}
}

// StartScheduler starts the hourly LeetCode refresh scheduler
func (s *SchedulerService) StartScheduler() {
	go func() {
		for {
			s.scheduleLeetCodeSyncs()

			// Sleep until the next hour
			now := time.Now()
			nextHour := now.Add(1 * time.Hour)
			nextHour = time.Date(nextHour.Year(), nextHour.Month(), nextHour.Day(), nextHour.Hour(), 0, 0, 0, nextHour.Location())
			time.Sleep(nextHour.Sub(now))
		}
	}()
}

// scheduleLeetCodeSyncs enqueues sync jobs for profiles past the staleness
// window, up to the batch limit
func (s *SchedulerService) scheduleLeetCodeSyncs() {
	usernames, err := s.leetcodeService.StaleUsernames(config.AppConfig.LeetCode.BatchLimit)
	if err != nil {
		logger.WithError(err).Error("Failed to list stale LeetCode profiles")
		return
	}

	if len(usernames) == 0 {
		logger.Info("No LeetCode profiles need updating at the moment")
		return
	}

	scheduled := 0
	for _, username := range usernames {
		active, err := s.jobRepo.HasActiveJob(models.JobTypeLeetCodeSync, username)
		if err != nil {
			logger.WithError(err).Errorf("Failed to check existing jobs for %s", username)
			continue
		}
		if active {
			continue
		}

		job := models.NewJob(models.JobTypeLeetCodeSync, username)
		if err := s.jobRepo.Create(job); err != nil {
			logger.WithError(err).Errorf("Failed to create sync job for %s", username)
			continue
		}
		scheduled++
	}

	logger.Infof("Scheduled %d LeetCode sync jobs (%d stale profiles)", scheduled, len(usernames))
}
