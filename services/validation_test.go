package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func datePtr(d datatypes.Date) *datatypes.Date {
	return &d
}

func strPtr(s string) *string {
	return &s
}

func TestCheckDateOrder(t *testing.T) {
	tests := []struct {
		name    string
		start   datatypes.Date
		end     datatypes.Date
		wantErr bool
	}{
		{"end before start", models.NewDate(2020, 1, 1), models.NewDate(2019, 1, 1), true},
		{"end after start", models.NewDate(2020, 1, 1), models.NewDate(2021, 1, 1), false},
		{"same day", models.NewDate(2020, 1, 1), models.NewDate(2020, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDateOrder(tt.start, tt.end)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.IsValidationError(err))
			assert.Contains(t, err.Error(), EndBeforeStartMessage)
		})
	}
}

func validProject() *models.Project {
	p := models.NewProject()
	p.Name = "Portfolio"
	p.ShortDescription = "This site"
	p.StartDate = datePtr(models.NewDate(2020, 1, 1))
	return p
}

func TestValidateProject(t *testing.T) {
	p := validProject()
	require.NoError(t, ValidateProject(p))
	assert.Equal(t, "portfolio", p.Slug)

	p = validProject()
	p.EndDate = datePtr(models.NewDate(2019, 1, 1))
	assert.True(t, errs.IsValidationError(ValidateProject(p)))

	p = validProject()
	p.StartDate = nil
	p.EndDate = datePtr(models.NewDate(2019, 1, 1))
	assert.True(t, errs.IsMissingRequiredFieldError(ValidateProject(p)))

	p = validProject()
	p.Name = strings.Repeat("x", 21)
	assert.True(t, errs.IsInvalidFieldError(ValidateProject(p)))

	p = validProject()
	p.RepositoryURL = strPtr("github.com/me/site")
	assert.True(t, errs.IsInvalidFieldError(ValidateProject(p)))

	p = validProject()
	p.Slug = "not a slug"
	assert.True(t, errs.IsInvalidFieldError(ValidateProject(p)))
}

func TestValidateTreatsBlankOptionalFieldsAsUnset(t *testing.T) {
	p := validProject()
	p.RepositoryURL = strPtr("")
	p.LiveURL = strPtr("  ")
	p.LongDescription = strPtr("")
	require.NoError(t, ValidateProject(p))
	assert.Nil(t, p.RepositoryURL)
	assert.Nil(t, p.LiveURL)
	assert.Nil(t, p.LongDescription)

	company := &models.Company{Name: "Acme", Logo: "acme.png", Website: strPtr("")}
	require.NoError(t, ValidateCompany(company))
	assert.Nil(t, company.Website)

	task := &models.Task{Task: "Shipped the API", Link: strPtr("")}
	require.NoError(t, ValidateTask(task))
	assert.Nil(t, task.Link)

	article := &models.Article{Name: "a", Description: "d", URL: "https://a.test", DatePosted: models.NewDate(2021, 1, 1), Image: strPtr("")}
	require.NoError(t, ValidateArticle(article))
	assert.Nil(t, article.Image)

	task.Link = strPtr("not a url")
	assert.True(t, errs.IsInvalidFieldError(ValidateTask(task)))
}

func TestValidateJob(t *testing.T) {
	job := &models.Job{Title: "Engineer", CompanyID: uuid.New(), StartDate: models.NewDate(2030, 1, 1)}
	assert.NoError(t, ValidateJob(job), "no end date means no ordering check")

	job.EndDate = datePtr(models.NewDate(2029, 12, 31))
	assert.True(t, errs.IsValidationError(ValidateJob(job)))

	job.EndDate = nil
	job.Level = models.JobLevel(9)
	assert.True(t, errs.IsInvalidFieldError(ValidateJob(job)))

	job.Level = models.LevelContract
	job.CompanyID = uuid.Nil
	assert.True(t, errs.IsMissingRequiredFieldError(ValidateJob(job)))
}

func TestValidateOthers(t *testing.T) {
	assert.True(t, errs.IsMissingRequiredFieldError(ValidateCompany(&models.Company{Name: "Acme"})))
	assert.NoError(t, ValidateCompany(&models.Company{Name: "Acme", Logo: "acme.png", Website: strPtr("https://acme.test")}))

	assert.True(t, errs.IsInvalidFieldError(ValidateTask(&models.Task{Task: strings.Repeat("t", 51)})))
	assert.NoError(t, ValidateTask(&models.Task{Task: strings.Repeat("t", 50)}))

	assert.True(t, errs.IsMissingRequiredFieldError(ValidateArticle(&models.Article{Name: "a", Description: "d", URL: "https://a.test"})))
	assert.NoError(t, ValidateArticle(&models.Article{Name: "a", Description: "d", URL: "https://a.test", DatePosted: models.NewDate(2021, 1, 1)}))

	c := &models.Category{Name: "Web Apps!"}
	require.NoError(t, ValidateCategory(c))
	assert.Equal(t, "web-apps", c.Slug)
}

func TestValidateCategoryDerivesSlug(t *testing.T) {
	c := &models.Category{Name: "日本語"}
	require.NoError(t, ValidateCategory(c))
	assert.Regexp(t, `^[a-z0-9-]+$`, c.Slug)

	c = &models.Category{Name: "!!!"}
	err := ValidateCategory(c)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "name", apiErr.Field)

	c = &models.Category{Name: "!!!", Slug: "misc"}
	assert.NoError(t, ValidateCategory(c), "an explicit slug needs nothing from the name")

	err = ValidateCategory(&models.Category{Name: " "})
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
	assert.Equal(t, "name", apiErr.Field)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("  Hello, World!  "))
	assert.Equal(t, "go_lang-2", Slugify("Go_Lang 2"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "cafe", Slugify("Café"))
	assert.Len(t, Slugify(strings.Repeat("ab ", 40)), 50)
}
