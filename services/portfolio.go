package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func (s *Service) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := s.db.CategoryRepo().Add(ctx, category); err != nil {
		return nil, errs.NewDatabaseError("create", "category", err)
	}
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, category *models.Category) (*models.Category, error) {
	existing, err := s.db.CategoryRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	category.ID = id
	category.TimeAdded = existing.TimeAdded
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := s.db.CategoryRepo().Update(ctx, category); err != nil {
		return nil, errs.NewDatabaseError("update", "category", err)
	}
	return s.reloadCategory(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "category", id, s.db.CategoryRepo().Delete)
}

func (s *Service) reloadCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.db.CategoryRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "category", err)
	}
	return category, nil
}

// CreateSubCategory stores a sub-category filed under categoryIDs
func (s *Service) CreateSubCategory(ctx context.Context, subCategory *models.SubCategory, categoryIDs []uuid.UUID) (*models.SubCategory, error) {
	if err := ValidateSubCategory(subCategory); err != nil {
		return nil, err
	}
	err := s.db.Transaction(ctx, func(tx database.Database) error {
		if err := checkIDs(ctx, "category_ids", "category", categoryIDs, tx.CategoryRepo().Missing); err != nil {
			return err
		}
		if err := tx.SubCategoryRepo().Add(ctx, subCategory); err != nil {
			return err
		}
		return tx.SubCategoryRepo().SetCategories(ctx, subCategory.ID, categoryIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("create", "sub-category", err)
	}
	return s.reloadSubCategory(ctx, subCategory.ID)
}

// UpdateSubCategory rewrites a sub-category. A nil categoryIDs keeps the
// current categories; an empty one clears them.
func (s *Service) UpdateSubCategory(ctx context.Context, id uuid.UUID, subCategory *models.SubCategory, categoryIDs []uuid.UUID) (*models.SubCategory, error) {
	existing, err := s.db.SubCategoryRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "sub-category", err)
	}
	subCategory.ID = id
	subCategory.TimeAdded = existing.TimeAdded
	if err := ValidateSubCategory(subCategory); err != nil {
		return nil, err
	}
	err = s.db.Transaction(ctx, func(tx database.Database) error {
		if err := checkIDs(ctx, "category_ids", "category", categoryIDs, tx.CategoryRepo().Missing); err != nil {
			return err
		}
		if err := tx.SubCategoryRepo().Update(ctx, subCategory); err != nil {
			return err
		}
		if categoryIDs == nil {
			return nil
		}
		return tx.SubCategoryRepo().SetCategories(ctx, id, categoryIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("update", "sub-category", err)
	}
	return s.reloadSubCategory(ctx, id)
}

func (s *Service) DeleteSubCategory(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "sub-category", id, s.db.SubCategoryRepo().Delete)
}

func (s *Service) reloadSubCategory(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	subCategory, err := s.db.SubCategoryRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "sub-category", err)
	}
	return subCategory, nil
}

// CreateProject validates and stores a project with its sub-categories
func (s *Service) CreateProject(ctx context.Context, project *models.Project, subCategoryIDs []uuid.UUID) (*models.Project, error) {
	if err := ValidateProject(project); err != nil {
		return nil, err
	}
	err := s.db.Transaction(ctx, func(tx database.Database) error {
		if err := checkIDs(ctx, "sub_category_ids", "sub-category", subCategoryIDs, tx.SubCategoryRepo().Missing); err != nil {
			return err
		}
		if err := tx.ProjectRepo().Add(ctx, project); err != nil {
			return err
		}
		return tx.ProjectRepo().SetSubCategories(ctx, project.ID, subCategoryIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}
	return s.reloadProject(ctx, project.ID)
}

// UpdateProject rewrites a project. The stored row is left untouched when
// validation fails. A nil subCategoryIDs keeps the current sub-categories.
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, project *models.Project, subCategoryIDs []uuid.UUID) (*models.Project, error) {
	existing, err := s.db.ProjectRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	project.ID = id
	project.TimeAdded = existing.TimeAdded
	if err := ValidateProject(project); err != nil {
		return nil, err
	}
	err = s.db.Transaction(ctx, func(tx database.Database) error {
		if err := checkIDs(ctx, "sub_category_ids", "sub-category", subCategoryIDs, tx.SubCategoryRepo().Missing); err != nil {
			return err
		}
		if err := tx.ProjectRepo().Update(ctx, project); err != nil {
			return err
		}
		if subCategoryIDs == nil {
			return nil
		}
		return tx.ProjectRepo().SetSubCategories(ctx, id, subCategoryIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return s.reloadProject(ctx, id)
}

func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "project", id, s.db.ProjectRepo().Delete)
}

func (s *Service) reloadProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.db.ProjectRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "project", err)
	}
	return project, nil
}

// CreateArticle validates and stores an article with its sub-categories
func (s *Service) CreateArticle(ctx context.Context, article *models.Article, subCategoryIDs []uuid.UUID) (*models.Article, error) {
	if err := ValidateArticle(article); err != nil {
		return nil, err
	}
	err := s.db.Transaction(ctx, func(tx database.Database) error {
		if err := checkIDs(ctx, "sub_category_ids", "sub-category", subCategoryIDs, tx.SubCategoryRepo().Missing); err != nil {
			return err
		}
		if err := tx.ArticleRepo().Add(ctx, article); err != nil {
			return err
		}
		return tx.ArticleRepo().SetSubCategories(ctx, article.ID, subCategoryIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("create", "article", err)
	}
	return s.reloadArticle(ctx, article.ID)
}

func (s *Service) UpdateArticle(ctx context.Context, id uuid.UUID, article *models.Article, subCategoryIDs []uuid.UUID) (*models.Article, error) {
	existing, err := s.db.ArticleRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	article.ID = id
	article.TimeAdded = existing.TimeAdded
	if err := ValidateArticle(article); err != nil {
		return nil, err
	}
	err = s.db.Transaction(ctx, func(tx database.Database) error {
		if err := checkIDs(ctx, "sub_category_ids", "sub-category", subCategoryIDs, tx.SubCategoryRepo().Missing); err != nil {
			return err
		}
		if err := tx.ArticleRepo().Update(ctx, article); err != nil {
			return err
		}
		if subCategoryIDs == nil {
			return nil
		}
		return tx.ArticleRepo().SetSubCategories(ctx, id, subCategoryIDs)
	})
	if err != nil {
		return nil, errs.NewDatabaseError("update", "article", err)
	}
	return s.reloadArticle(ctx, id)
}

func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return s.deleteWith(ctx, "article", id, s.db.ArticleRepo().Delete)
}

func (s *Service) reloadArticle(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	article, err := s.db.ArticleRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find saved", "article", err)
	}
	return article, nil
}
