package api

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
)

// Request bodies. Dates travel as YYYY-MM-DD strings and associations as id
// lists. An absent id list leaves the stored associations alone on update;
// an empty one clears them.

type categoryRequest struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
	Slug  string  `json:"slug"`
}

func (req categoryRequest) toModel() *models.Category {
	return &models.Category{Name: req.Name, Image: req.Image, Slug: req.Slug}
}

type subCategoryRequest struct {
	Name        string      `json:"name"`
	Image       *string     `json:"image"`
	Slug        string      `json:"slug"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

func (req subCategoryRequest) toModel() *models.SubCategory {
	return &models.SubCategory{Name: req.Name, Image: req.Image, Slug: req.Slug}
}

type projectRequest struct {
	Name                  string      `json:"name"`
	ShortDescription      string      `json:"short_description"`
	LongDescription       *string     `json:"long_description"`
	Image                 *string     `json:"image"`
	Slug                  string      `json:"slug"`
	Weight                int         `json:"weight"`
	RepositoryURL         *string     `json:"repository_url"`
	RepositoryURLIsPublic *bool       `json:"repository_url_is_public"`
	LiveURL               *string     `json:"live_url"`
	LiveURLIsPublic       *bool       `json:"live_url_is_public"`
	StartDate             *string     `json:"start_date"`
	EndDate               *string     `json:"end_date"`
	IsPublic              *bool       `json:"is_public"`
	SubCategoryIDs        []uuid.UUID `json:"sub_category_ids"`
}

// toModel leaves a missing start date nil so the service reports it
func (req projectRequest) toModel() (*models.Project, error) {
	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	project := models.NewProject()
	project.Name = req.Name
	project.ShortDescription = req.ShortDescription
	project.LongDescription = req.LongDescription
	project.Image = req.Image
	project.Slug = req.Slug
	project.Weight = req.Weight
	project.RepositoryURL = req.RepositoryURL
	project.RepositoryURLIsPublic = boolOr(req.RepositoryURLIsPublic, project.RepositoryURLIsPublic)
	project.LiveURL = req.LiveURL
	project.LiveURLIsPublic = boolOr(req.LiveURLIsPublic, project.LiveURLIsPublic)
	project.StartDate = startDate
	project.EndDate = endDate
	project.IsPublic = boolOr(req.IsPublic, project.IsPublic)
	return project, nil
}

type articleRequest struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Image          *string     `json:"image"`
	Weight         int         `json:"weight"`
	URL            string      `json:"url"`
	DatePosted     *string     `json:"date_posted"`
	SubCategoryIDs []uuid.UUID `json:"sub_category_ids"`
}

func (req articleRequest) toModel() (*models.Article, error) {
	datePosted, err := requireDate("date_posted", req.DatePosted)
	if err != nil {
		return nil, err
	}
	return &models.Article{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Weight:      req.Weight,
		URL:         req.URL,
		DatePosted:  datePosted,
	}, nil
}

type companyRequest struct {
	Name    string  `json:"name"`
	Logo    string  `json:"logo"`
	Website *string `json:"website"`
}

func (req companyRequest) toModel() *models.Company {
	return &models.Company{Name: req.Name, Logo: req.Logo, Website: req.Website}
}

type taskRequest struct {
	Task   string  `json:"task"`
	Link   *string `json:"link"`
	Weight int     `json:"weight"`
}

func (req taskRequest) toModel() *models.Task {
	return &models.Task{Task: req.Task, Link: req.Link, Weight: req.Weight}
}

type jobRequest struct {
	Title       string          `json:"title"`
	Level       models.JobLevel `json:"level"`
	CompanyID   uuid.UUID       `json:"company_id"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	IsPublic    *bool           `json:"is_public"`
	IsVolunteer bool            `json:"is_volunteer"`
	TaskIDs     []uuid.UUID     `json:"task_ids"`
}

func (req jobRequest) toModel() (*models.Job, error) {
	startDate, err := requireDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	job := models.NewJob()
	job.Title = req.Title
	job.Level = req.Level
	job.CompanyID = req.CompanyID
	job.StartDate = startDate
	job.EndDate = endDate
	job.IsPublic = boolOr(req.IsPublic, job.IsPublic)
	job.IsVolunteer = req.IsVolunteer
	return job, nil
}
