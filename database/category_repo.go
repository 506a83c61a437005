package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories
func (r *CategoryRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.Category, error) {
	var categories []*models.Category
	err := opts.apply(r.db.WithContext(ctx), CategoryOrder).Find(&categories).Error
	return categories, err
}

// FindByID returns a category by its ID
func (r *CategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Missing returns the ids among ids that have no category
func (r *CategoryRepo) Missing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return missingIDs(r.db.WithContext(ctx), &models.Category{}, ids)
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(ctx context.Context, category *models.Category) error {
	assignID(&category.ID)
	return r.db.WithContext(ctx).Create(category).Error
}

// Update writes every column except time_added
func (r *CategoryRepo) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Model(category).Select("*").Omit("TimeAdded", clause.Associations).Updates(category).Error
}

// Delete removes a category and detaches it from its sub-categories
func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.SubCategoryCategory{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Category{}, id)
	})
}
