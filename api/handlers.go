package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, service *services.Service, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		categoryHandler:    newCategoryHandler(db, service),
		subCategoryHandler: newSubCategoryHandler(db, service),
		projectHandler:     newProjectHandler(db, service),
		articleHandler:     newArticleHandler(db, service),
		companyHandler:     newCompanyHandler(db, service),
		taskHandler:        newTaskHandler(db, service),
		jobHandler:         newJobHandler(db, service),
		portfolioHandler:   newPortfolioHandler(db, service, startupTime),
	}
}
