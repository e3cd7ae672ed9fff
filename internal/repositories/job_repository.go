package repositories

import (
	"database/sql"
	"sync"

	"github.com/parasnikum/DevSync/internal/models"
)

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, job_type, target, status, error_message, started_at, completed_at, created_at, updated_at`

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		job.ID,
		job.JobType,
		job.Target,
		job.Status,
		job.ErrorMessage,
		job.StartedAt,
		job.CompletedAt,
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

// GetNextPendingJob retrieves the next pending job of a specific type (FIFO)
// and marks it in-progress. Thread-safe; returns nil when no job is pending.
func (r *JobRepository) GetNextPendingJob(jobType models.JobType) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = ? AND job_type = ?
		ORDER BY created_at ASC
		LIMIT 1
	`

	job := &models.Job{}
	err = tx.QueryRow(query, models.JobStatusPending, jobType).Scan(
		&job.ID,
		&job.JobType,
		&job.Target,
		&job.Status,
		&job.ErrorMessage,
		&job.StartedAt,
		&job.CompletedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	job.MarkStarted()
	_, err = tx.Exec(
		`UPDATE jobs SET status = ?, started_at = ?, updated_at = ? WHERE id = ?`,
		job.Status, job.StartedAt, job.UpdatedAt, job.ID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return job, nil
}

// Update updates a job
func (r *JobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		UPDATE jobs
		SET status = ?, error_message = ?, started_at = ?, completed_at = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		job.Status,
		job.ErrorMessage,
		job.StartedAt,
		job.CompletedAt,
		job.UpdatedAt,
		job.ID,
	)
	return err
}

// HasActiveJob checks whether a pending or in-progress job of the given type
// already targets the same subject
func (r *JobRepository) HasActiveJob(jobType models.JobType, target string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		SELECT COUNT(1)
		FROM jobs
		WHERE job_type = ? AND target = ? AND status IN (?, ?)
	`

	var count int
	err := r.db.QueryRow(query, jobType, target, models.JobStatusPending, models.JobStatusInProgress).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
