package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubCategoryRepo struct {
	db *gorm.DB
}

func NewSubCategoryRepo(db *gorm.DB) *SubCategoryRepo {
	return &SubCategoryRepo{db}
}

// FindAll returns all sub-categories with their categories
func (r *SubCategoryRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.SubCategory, error) {
	var subCategories []*models.SubCategory
	err := opts.apply(r.db.WithContext(ctx).Preload("Categories", orderBy(CategoryOrder)), SubCategoryOrder).
		Find(&subCategories).Error
	return subCategories, err
}

// FindByID returns a sub-category by its ID
func (r *SubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.db.WithContext(ctx).Preload("Categories", orderBy(CategoryOrder)).Where("id = ?", id).First(&subCategory).Error
	if err != nil {
		return nil, err
	}
	return &subCategory, nil
}

// FindByCategory returns the sub-categories filed under a category
func (r *SubCategoryRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.SubCategory, error) {
	var subCategories []*models.SubCategory
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.SubCategoryCategory{}).Select("sub_category_id").Where("category_id = ?", categoryID)).
		Scopes(orderBy(SubCategoryOrder)).
		Find(&subCategories).Error
	return subCategories, err
}

// Missing returns the ids among ids that have no sub-category
func (r *SubCategoryRepo) Missing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return missingIDs(r.db.WithContext(ctx), &models.SubCategory{}, ids)
}

// Add inserts a new sub-category; associations are set through SetCategories
func (r *SubCategoryRepo) Add(ctx context.Context, subCategory *models.SubCategory) error {
	assignID(&subCategory.ID)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(subCategory).Error
}

// Update writes every column except time_added
func (r *SubCategoryRepo) Update(ctx context.Context, subCategory *models.SubCategory) error {
	return r.db.WithContext(ctx).Model(subCategory).Select("*").Omit("TimeAdded", clause.Associations).Updates(subCategory).Error
}

// SetCategories replaces the categories of a sub-category
func (r *SubCategoryRepo) SetCategories(ctx context.Context, subCategoryID uuid.UUID, categoryIDs []uuid.UUID) error {
	ids := uniqueIDs(categoryIDs)
	rows := make([]models.SubCategoryCategory, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.SubCategoryCategory{SubCategoryID: subCategoryID, CategoryID: id})
	}
	return replaceJoinRows(r.db.WithContext(ctx), "sub_category_id", subCategoryID, rows)
}

// Delete removes a sub-category and every join row that points at it
func (r *SubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, join := range []interface{}{
			&models.SubCategoryCategory{},
			&models.ProjectSubCategory{},
			&models.ArticleSubCategory{},
		} {
			if err := tx.Where("sub_category_id = ?", id).Delete(join).Error; err != nil {
				return err
			}
		}
		return deleteByID(tx, &models.SubCategory{}, id)
	})
}

// orderBy adapts a display order for use in Preload
func orderBy(order []clause.OrderByColumn) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, col := range order {
			db = db.Order(col)
		}
		return db
	}
}
