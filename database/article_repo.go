package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// FindAll returns articles in display order, weight first then most recently posted
func (r *ArticleRepo) FindAll(ctx context.Context, opts ListOptions) ([]*models.Article, error) {
	var articles []*models.Article
	query := r.db.WithContext(ctx).Preload("SubCategories", orderBy(SubCategoryOrder))
	err := opts.apply(query, ArticleOrder).Find(&articles).Error
	return articles, err
}

// FindBySubCategory returns the articles filed under a sub-category
func (r *ArticleRepo) FindBySubCategory(ctx context.Context, subCategoryID uuid.UUID, opts ListOptions) ([]*models.Article, error) {
	var articles []*models.Article
	query := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.ArticleSubCategory{}).Select("article_id").Where("sub_category_id = ?", subCategoryID))
	err := opts.apply(query, ArticleOrder).Find(&articles).Error
	return articles, err
}

// FindByID returns an article by its ID
func (r *ArticleRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Preload("SubCategories", orderBy(SubCategoryOrder)).Where("id = ?", id).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Add inserts a new article into the database
func (r *ArticleRepo) Add(ctx context.Context, article *models.Article) error {
	assignID(&article.ID)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

// Update writes every column except time_added
func (r *ArticleRepo) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Model(article).Select("*").Omit("TimeAdded", clause.Associations).Updates(article).Error
}

// SetSubCategories replaces the sub-categories of an article
func (r *ArticleRepo) SetSubCategories(ctx context.Context, articleID uuid.UUID, subCategoryIDs []uuid.UUID) error {
	ids := uniqueIDs(subCategoryIDs)
	rows := make([]models.ArticleSubCategory, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ArticleSubCategory{ArticleID: articleID, SubCategoryID: id})
	}
	return replaceJoinRows(r.db.WithContext(ctx), "article_id", articleID, rows)
}

// Delete removes an article by id
func (r *ArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleSubCategory{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Article{}, id)
	})
}
