package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *JobRepo {
	return &JobRepo{db}
}

func (r *JobRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Company").Preload("Tasks", orderBy(TaskOrder))
}

// FindAll returns jobs, most recent start date first
func (r *JobRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.Job, error) {
	var jobs []*models.Job
	query := r.withRelations(ctx)
	if opts.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := opts.apply(query, JobOrder).Find(&jobs).Error
	return jobs, err
}

// FindByCompany returns the jobs held at a company
func (r *JobRepo) FindByCompany(ctx context.Context, companyID uuid.UUID, opts ListOptions) ([]*models.Job, error) {
	var jobs []*models.Job
	query := r.withRelations(ctx).Where("company_id = ?", companyID)
	if opts.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := opts.apply(query, JobOrder).Find(&jobs).Error
	return jobs, err
}

// FindByID returns a job by its ID
func (r *JobRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.withRelations(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Add inserts a new job into the database
func (r *JobRepo) Add(ctx context.Context, job *models.Job) error {
	assignID(&job.ID)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error
}

// Update writes every column except time_added
func (r *JobRepo) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Model(job).Select("*").Omit("TimeAdded", clause.Associations).Updates(job).Error
}

// SetTasks replaces the tasks of a job
func (r *JobRepo) SetTasks(ctx context.Context, jobID uuid.UUID, taskIDs []uuid.UUID) error {
	ids := uniqueIDs(taskIDs)
	rows := make([]models.JobTask, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.JobTask{JobID: jobID, TaskID: id})
	}
	return replaceJoinRows(r.db.WithContext(ctx), "job_id", jobID, rows)
}

// Delete removes a job by id
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.JobTask{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Job{}, id)
	})
}
