package services

import (
	"context"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"golang.org/x/sync/errgroup"
)

// Overview is everything the public site renders on its landing page
type Overview struct {
	Categories    []*models.Category    `json:"categories"`
	SubCategories []*models.SubCategory `json:"sub_categories"`
	Projects      []*models.Project     `json:"projects"`
	Articles      []*models.Article     `json:"articles"`
	Jobs          []*models.Job         `json:"jobs"`
}

// Overview loads the public feed, each listing in its default display order
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var o Overview
	public := database.ListOptions{PublicOnly: true}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		o.Categories, err = s.db.CategoryRepo().FindAll(ctx, database.ListOptions{})
		return err
	})
	g.Go(func() (err error) {
		o.SubCategories, err = s.db.SubCategoryRepo().FindAll(ctx, database.ListOptions{})
		return err
	})
	g.Go(func() (err error) {
		o.Projects, err = s.db.ProjectRepo().FindAll(ctx, public)
		return err
	})
	g.Go(func() (err error) {
		o.Articles, err = s.db.ArticleRepo().FindAll(ctx, database.ListOptions{})
		return err
	})
	g.Go(func() (err error) {
		o.Jobs, err = s.db.JobRepo().FindAll(ctx, public)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.NewDatabaseError("load", "overview", err)
	}

	for _, p := range o.Projects {
		RedactPrivateLinks(p)
	}
	return &o, nil
}

// RedactPrivateLinks clears the repository and live URLs a project keeps private
func RedactPrivateLinks(p *models.Project) {
	if !p.RepositoryURLIsPublic {
		p.RepositoryURL = nil
	}
	if !p.LiveURLIsPublic {
		p.LiveURL = nil
	}
}
