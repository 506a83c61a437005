package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()
	db, err := Open(map[string]string{"DB_TYPE": "sqlite", "SQLITE_PATH": ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

func datePtr(d datatypes.Date) *datatypes.Date {
	return &d
}

func names[T any](items []*T, name func(*T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}

func TestOpenRejectsUnknownType(t *testing.T) {
	_, err := Open(map[string]string{"DB_TYPE": "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_TYPE")

	_, err = Open(map[string]string{"DB_TYPE": "postgres"})
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "portfolio.db?cache=shared&_foreign_keys=on", sqliteDSN("portfolio.db?cache=shared"))
}

func TestArticleDefaultOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	for i, weight := range []int{5, 1, 3} {
		article := &models.Article{
			Name:        []string{"five", "one", "three"}[i],
			Description: "an article",
			Weight:      weight,
			URL:         "https://example.com/a",
			DatePosted:  models.NewDate(2021, time.Month(i+1), 1),
		}
		require.NoError(t, d.ArticleRepo().Add(ctx, article))
	}

	articles, err := d.ArticleRepo().FindAll(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "three", "five"}, names(articles, func(a *models.Article) string { return a.Name }))
}

func TestArticleOrderBreaksTiesOnNewestPost(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	require.NoError(t, d.ArticleRepo().Add(ctx, &models.Article{Name: "old", Description: "d", URL: "https://e.com", DatePosted: models.NewDate(2019, 1, 1)}))
	require.NoError(t, d.ArticleRepo().Add(ctx, &models.Article{Name: "new", Description: "d", URL: "https://e.com", DatePosted: models.NewDate(2022, 1, 1)}))

	articles, err := d.ArticleRepo().FindAll(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, names(articles, func(a *models.Article) string { return a.Name }))
}

func TestProjectOrderAndOverride(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	add := func(name string, weight int, start datatypes.Date, public bool) {
		require.NoError(t, d.ProjectRepo().Add(ctx, &models.Project{
			Name:             name,
			ShortDescription: "p",
			Slug:             name,
			Weight:           weight,
			StartDate:        datePtr(start),
			IsPublic:         public,
		}))
	}
	add("alpha", 1, models.NewDate(2018, 1, 1), true)
	add("beta", 0, models.NewDate(2017, 1, 1), false)
	add("gamma", 1, models.NewDate(2020, 1, 1), true)

	projects, err := d.ProjectRepo().FindAll(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "gamma", "alpha"}, names(projects, func(p *models.Project) string { return p.Name }))

	order, err := ParseOrder("name", ProjectSortFields)
	require.NoError(t, err)
	projects, err = d.ProjectRepo().FindAll(ctx, ListOptions{Order: order})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(projects, func(p *models.Project) string { return p.Name }))

	projects, err = d.ProjectRepo().FindAll(ctx, ListOptions{PublicOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma", "alpha"}, names(projects, func(p *models.Project) string { return p.Name }))
}

func TestTaskOrderUsesLastEdited(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	first := &models.Task{Task: "first"}
	second := &models.Task{Task: "second"}
	heavy := &models.Task{Task: "heavy", Weight: 2}
	require.NoError(t, d.TaskRepo().Add(ctx, first))
	require.NoError(t, d.TaskRepo().Add(ctx, second))
	require.NoError(t, d.TaskRepo().Add(ctx, heavy))

	// editing first makes it the most recently edited of the weight-0 tasks
	time.Sleep(10 * time.Millisecond)
	first.Task = "first edited"
	require.NoError(t, d.TaskRepo().Update(ctx, first))

	tasks, err := d.TaskRepo().FindAll(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first edited", "second", "heavy"}, names(tasks, func(t *models.Task) string { return t.Task }))
}

func TestJobOrderAndRelations(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	company := &models.Company{Name: "Acme", Logo: "logos/acme.png"}
	require.NoError(t, d.CompanyRepo().Add(ctx, company))
	taskA := &models.Task{Task: "wrote the api", Weight: 1}
	taskB := &models.Task{Task: "ran the migrations"}
	require.NoError(t, d.TaskRepo().Add(ctx, taskA))
	require.NoError(t, d.TaskRepo().Add(ctx, taskB))

	older := &models.Job{Title: "Intern", Level: models.LevelIntern, CompanyID: company.ID, StartDate: models.NewDate(2019, 6, 1), IsPublic: true}
	newer := &models.Job{Title: "Engineer", CompanyID: company.ID, StartDate: models.NewDate(2021, 1, 1), IsPublic: true}
	require.NoError(t, d.JobRepo().Add(ctx, older))
	require.NoError(t, d.JobRepo().Add(ctx, newer))
	require.NoError(t, d.JobRepo().SetTasks(ctx, newer.ID, []uuid.UUID{taskA.ID, taskB.ID, taskA.ID}))

	jobs, err := d.JobRepo().FindAll(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Engineer", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company.Name)
	assert.Equal(t, []string{"ran the migrations", "wrote the api"}, names(ptrs(jobs[0].Tasks), func(t *models.Task) string { return t.Task }))
	assert.Equal(t, models.LevelIntern, jobs[1].Level)

	byCompany, err := d.JobRepo().FindByCompany(ctx, company.ID, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, byCompany, 2)
}

func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func TestCategoryNameIsUnique(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	require.NoError(t, d.CategoryRepo().Add(ctx, &models.Category{Name: "Software", Slug: "software"}))
	err := d.CategoryRepo().Add(ctx, &models.Category{Name: "Software", Slug: "software-2"})
	require.Error(t, err)
	assert.True(t, errs.IsUniqueConstraintViolationError(errs.NewDatabaseError("create", "category", err)))
}

func TestSubCategoryAssociations(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	software := &models.Category{Name: "Software", Slug: "software"}
	writing := &models.Category{Name: "Writing", Slug: "writing"}
	require.NoError(t, d.CategoryRepo().Add(ctx, software))
	require.NoError(t, d.CategoryRepo().Add(ctx, writing))

	golang := &models.SubCategory{Name: "Go", Slug: "go"}
	require.NoError(t, d.SubCategoryRepo().Add(ctx, golang))
	require.NoError(t, d.SubCategoryRepo().SetCategories(ctx, golang.ID, []uuid.UUID{writing.ID, software.ID}))

	loaded, err := d.SubCategoryRepo().FindByID(ctx, golang.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go [Software, Writing]", loaded.String())

	bySoftware, err := d.SubCategoryRepo().FindByCategory(ctx, software.ID)
	require.NoError(t, err)
	require.Len(t, bySoftware, 1)

	require.NoError(t, d.SubCategoryRepo().SetCategories(ctx, golang.ID, []uuid.UUID{writing.ID}))
	loaded, err = d.SubCategoryRepo().FindByID(ctx, golang.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Categories, 1)
	assert.Equal(t, "Writing", loaded.Categories[0].Name)

	missing, err := d.CategoryRepo().Missing(ctx, []uuid.UUID{software.ID, uuid.Nil, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, missing, 1)

	require.NoError(t, d.CategoryRepo().Delete(ctx, writing.ID))
	loaded, err = d.SubCategoryRepo().FindByID(ctx, golang.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Categories)
}

func TestFindByCategoryOrdersByName(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	software := &models.Category{Name: "Software", Slug: "software"}
	require.NoError(t, d.CategoryRepo().Add(ctx, software))
	for _, name := range []string{"Rust", "Go"} {
		sub := &models.SubCategory{Name: name, Slug: name}
		require.NoError(t, d.SubCategoryRepo().Add(ctx, sub))
		require.NoError(t, d.SubCategoryRepo().SetCategories(ctx, sub.ID, []uuid.UUID{software.ID}))
	}

	subs, err := d.SubCategoryRepo().FindByCategory(ctx, software.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, names(subs, func(s *models.SubCategory) string { return s.Name }))
}

func TestSubCategoryDeleteDetachesWork(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	sub := &models.SubCategory{Name: "Go", Slug: "go"}
	require.NoError(t, d.SubCategoryRepo().Add(ctx, sub))
	project := &models.Project{Name: "site", ShortDescription: "s", Slug: "site", StartDate: datePtr(models.NewDate(2020, 1, 1))}
	require.NoError(t, d.ProjectRepo().Add(ctx, project))
	require.NoError(t, d.ProjectRepo().SetSubCategories(ctx, project.ID, []uuid.UUID{sub.ID}))

	bySub, err := d.ProjectRepo().FindBySubCategory(ctx, sub.ID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, bySub, 1)

	require.NoError(t, d.SubCategoryRepo().Delete(ctx, sub.ID))
	loaded, err := d.ProjectRepo().FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.SubCategories)
}

func TestCompanyDeleteRemovesJobs(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	company := &models.Company{Name: "Acme", Logo: "acme.png"}
	require.NoError(t, d.CompanyRepo().Add(ctx, company))
	task := &models.Task{Task: "shipped"}
	require.NoError(t, d.TaskRepo().Add(ctx, task))
	job := &models.Job{Title: "Dev", CompanyID: company.ID, StartDate: models.NewDate(2020, 1, 1)}
	require.NoError(t, d.JobRepo().Add(ctx, job))
	require.NoError(t, d.JobRepo().SetTasks(ctx, job.ID, []uuid.UUID{task.ID}))

	require.NoError(t, d.CompanyRepo().Delete(ctx, company.ID))

	_, err := d.JobRepo().FindByID(ctx, job.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = d.TaskRepo().FindByID(ctx, task.ID)
	assert.NoError(t, err, "tasks are shared and outlive the job")
}

func TestDeleteMissingRow(t *testing.T) {
	d := newTestDatabase(t)
	err := d.ArticleRepo().Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateKeepsTimeAdded(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	category := &models.Category{Name: "Software", Slug: "software"}
	require.NoError(t, d.CategoryRepo().Add(ctx, category))
	stored, err := d.CategoryRepo().FindByID(ctx, category.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, d.CategoryRepo().Update(ctx, &models.Category{ID: category.ID, Name: "Code", Slug: "code"}))

	updated, err := d.CategoryRepo().FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Code", updated.Name)
	assert.True(t, stored.TimeAdded.Equal(updated.TimeAdded))
	assert.True(t, updated.TimeLastEdited.After(stored.TimeLastEdited))
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	err := d.Transaction(ctx, func(tx Database) error {
		if err := tx.CompanyRepo().Add(ctx, &models.Company{Name: "Acme", Logo: "acme.png"}); err != nil {
			return err
		}
		return errs.NewValidationError("end_date", "End date cannot be before start date!")
	})
	require.Error(t, err)

	companies, err := d.CompanyRepo().FindAll(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, companies)
}
