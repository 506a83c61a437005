package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db}
}

// FindAll returns tasks, weight first then most recently edited
func (r *TaskRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.Task, error) {
	var tasks []*models.Task
	err := opts.apply(r.db.WithContext(ctx), TaskOrder).Find(&tasks).Error
	return tasks, err
}

// FindByID returns a task by its ID
func (r *TaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Missing returns the ids among ids that have no task
func (r *TaskRepo) Missing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return missingIDs(r.db.WithContext(ctx), &models.Task{}, ids)
}

// Add inserts a new task into the database
func (r *TaskRepo) Add(ctx context.Context, task *models.Task) error {
	assignID(&task.ID)
	return r.db.WithContext(ctx).Create(task).Error
}

// Update writes every column except time_added
func (r *TaskRepo) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Model(task).Select("*").Omit("TimeAdded", clause.Associations).Updates(task).Error
}

// Delete removes a task and detaches it from every job
func (r *TaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.JobTask{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Task{}, id)
	})
}
