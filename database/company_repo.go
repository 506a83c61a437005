package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db}
}

// FindAll returns all companies
func (r *CompanyRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.Company, error) {
	var companies []*models.Company
	err := opts.apply(r.db.WithContext(ctx), CompanyOrder).Find(&companies).Error
	return companies, err
}

// FindByID returns a company by its ID
func (r *CompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// Add inserts a new company into the database
func (r *CompanyRepo) Add(ctx context.Context, company *models.Company) error {
	assignID(&company.ID)
	return r.db.WithContext(ctx).Create(company).Error
}

// Update writes every column except time_added
func (r *CompanyRepo) Update(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Model(company).Select("*").Omit("TimeAdded", clause.Associations).Updates(company).Error
}

// Delete removes a company together with its jobs
func (r *CompanyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jobIDs := tx.Model(&models.Job{}).Select("id").Where("company_id = ?", id)
		if err := tx.Where("job_id IN (?)", jobIDs).Delete(&models.JobTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Company{}, id)
	})
}
