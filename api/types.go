package api

import (
	"github.com/rpupo63/portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	categoryHandler    categoryHandler
	subCategoryHandler subCategoryHandler
	projectHandler     projectHandler
	articleHandler     articleHandler
	companyHandler     companyHandler
	taskHandler        taskHandler
	jobHandler         jobHandler
	portfolioHandler   portfolioHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"validation failed: End date cannot be before start date!"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"end_date"`
	Details string `json:"details,omitempty" example:"End date cannot be before start date!"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

type CategoryCollection struct {
	Categories []*models.Category `json:"categories"`
	Total      int                `json:"total"`
}

type SubCategoryCollection struct {
	SubCategories []*models.SubCategory `json:"sub_categories"`
	Total         int                   `json:"total"`
}

// ProjectCollection is a page of projects in display order
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

type ArticleCollection struct {
	Articles []*models.Article `json:"articles"`
	Total    int               `json:"total"`
}

type CompanyCollection struct {
	Companies []*models.Company `json:"companies"`
	Total     int               `json:"total"`
}

type TaskCollection struct {
	Tasks []*models.Task `json:"tasks"`
	Total int            `json:"total"`
}

// JobCollection is a page of jobs, newest first unless reordered
type JobCollection struct {
	Jobs  []*models.Job `json:"jobs"`
	Total int           `json:"total"`
}
