package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

func (s *Service) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := ValidateCompany(company); err != nil {
		return nil, err
	}
	if err := s.db.CompanyRepo().Add(ctx, company); err != nil {
		return nil, errs.NewDatabaseError("create", "company", err)
	}
	return company, nil
}

func (s *Service) UpdateCompany(ctx context.Context, id uuid.UUID, company *models.Company) (*models.Company, error) {
	existing, err := s.db.CompanyRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "company", err)
	}
	company.ID = id
	company.TimeAdded = existing.TimeAdded
	if err := ValidateCompany(company); err != nil {
		return nil, err
	}
	if err := s.db.CompanyRepo().Update(ctx, company); err != nil {
		return nil, errs.NewDatabaseError("update", "company", err)
	}
	saved, err := s.db.CompanyRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "company", err)
	}
	return saved, nil
}

// DeleteCompany removes a company and, with it, every job held there
func (s *Service) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "company", id, s.db.CompanyRepo().Delete)
}

func (s *Service) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := ValidateTask(task); err != nil {
		return nil, err
	}
	if err := s.db.TaskRepo().Add(ctx, task); err != nil {
		return nil, errs.NewDatabaseError("create", "task", err)
	}
	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, task *models.Task) (*models.Task, error) {
	existing, err := s.db.TaskRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "task", err)
	}
	task.ID = id
	task.TimeAdded = existing.TimeAdded
	if err := ValidateTask(task); err != nil {
		return nil, err
	}
	if err := s.db.TaskRepo().Update(ctx, task); err != nil {
		return nil, errs.NewDatabaseError("update", "task", err)
	}
	saved, err := s.db.TaskRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "task", err)
	}
	return saved, nil
}

func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "task", id, s.db.TaskRepo().Delete)
}

// CreateJob validates and stores a job with its tasks
func (s *Service) CreateJob(ctx context.Context, job *models.Job, taskIDs []uuid.UUID) (*models.Job, error) {
	if err := ValidateJob(job); err != nil {
		return nil, err
	}
	err := s.db.Transaction(ctx, func(tx database.Database) error {
		if _, err := tx.CompanyRepo().FindByID(ctx, job.CompanyID); err != nil {
			return companyLookupError(err)
		}
		if err := checkIDs(ctx, "task_ids", "task", taskIDs, tx.TaskRepo().Missing); err != nil {
			return err
		}
		if err := tx.JobRepo().Add(ctx, job); err != nil {
			return err
		}
		return tx.JobRepo().SetTasks(ctx, job.ID, taskIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("create", "job", err)
	}
	return s.reloadJob(ctx, job.ID)
}

// UpdateJob rewrites a job. The stored row is left untouched when validation
// fails. A nil taskIDs keeps the current tasks.
func (s *Service) UpdateJob(ctx context.Context, id uuid.UUID, job *models.Job, taskIDs []uuid.UUID) (*models.Job, error) {
	existing, err := s.db.JobRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "job", err)
	}
	job.ID = id
	job.TimeAdded = existing.TimeAdded
	if err := ValidateJob(job); err != nil {
		return nil, err
	}
	err = s.db.Transaction(ctx, func(tx database.Database) error {
		if _, err := tx.CompanyRepo().FindByID(ctx, job.CompanyID); err != nil {
			return companyLookupError(err)
		}
		if err := checkIDs(ctx, "task_ids", "task", taskIDs, tx.TaskRepo().Missing); err != nil {
			return err
		}
		if err := tx.JobRepo().Update(ctx, job); err != nil {
			return err
		}
		if taskIDs == nil {
			return nil
		}
		return tx.JobRepo().SetTasks(ctx, id, taskIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("update", "job", err)
	}
	return s.reloadJob(ctx, id)
}

func (s *Service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "job", id, s.db.JobRepo().Delete)
}

func (s *Service) reloadJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.db.JobRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "job", err)
	}
	return job, nil
}

func companyLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewInvalidFieldError("company_id", "unknown company")
	}
	return err
}
