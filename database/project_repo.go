package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects in display order, weight first then newest start date
func (r *ProjectRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.Project, error) {
	var projects []*models.Project
	query := r.db.WithContext(ctx).Preload("SubCategories", orderBy(SubCategoryOrder))
	if opts.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := opts.apply(query, ProjectOrder).Find(&projects).Error
	return projects, err
}

// FindBySubCategory returns the projects filed under a sub-category
func (r *ProjectRepo) FindBySubCategory(ctx context.Context, subCategoryID uuid.UUID, opts ListOptions) ([]*models.Project, error) {
	var projects []*models.Project
	query := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.ProjectSubCategory{}).Select("project_id").Where("sub_category_id = ?", subCategoryID))
	if opts.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := opts.apply(query, ProjectOrder).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("SubCategories", orderBy(SubCategoryOrder)).Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	assignID(&project.ID)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// Update writes every column except time_added
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Model(project).Select("*").Omit("TimeAdded", clause.Associations).Updates(project).Error
}

// SetSubCategories replaces the sub-categories of a project
func (r *ProjectRepo) SetSubCategories(ctx context.Context, projectID uuid.UUID, subCategoryIDs []uuid.UUID) error {
	ids := uniqueIDs(subCategoryIDs)
	rows := make([]models.ProjectSubCategory, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProjectSubCategory{ProjectID: projectID, SubCategoryID: id})
	}
	return replaceJoinRows(r.db.WithContext(ctx), "project_id", projectID, rows)
}

// Delete removes a project by id
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectSubCategory{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Project{}, id)
	})
}
