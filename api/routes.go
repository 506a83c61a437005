package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes registers the public site's read endpoints and the
// editing endpoints behind them
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.portfolioHandler.getHealth())
		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())

		// Portfolio
		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/category/{categoryID}", handlers.categoryHandler.getCategory())
		r.Get("/category/{categoryID}/sub-categories", handlers.categoryHandler.getCategorySubCategories())
		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())

		r.Get("/sub-categories", handlers.subCategoryHandler.getAllSubCategories())
		r.Get("/sub-category/{subCategoryID}", handlers.subCategoryHandler.getSubCategory())
		r.Get("/sub-category/{subCategoryID}/projects", handlers.subCategoryHandler.getSubCategoryProjects())
		r.Get("/sub-category/{subCategoryID}/articles", handlers.subCategoryHandler.getSubCategoryArticles())
		r.Post("/sub-category", handlers.subCategoryHandler.createSubCategory())
		r.Put("/sub-category/{subCategoryID}", handlers.subCategoryHandler.updateSubCategory())
		r.Delete("/sub-category/{subCategoryID}", handlers.subCategoryHandler.deleteSubCategory())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/articles", handlers.articleHandler.getAllArticles())
		r.Get("/article/{articleID}", handlers.articleHandler.getArticle())
		r.Post("/article", handlers.articleHandler.createArticle())
		r.Put("/article/{articleID}", handlers.articleHandler.updateArticle())
		r.Delete("/article/{articleID}", handlers.articleHandler.deleteArticle())

		// Work history
		r.Get("/companies", handlers.companyHandler.getAllCompanies())
		r.Get("/company/{companyID}", handlers.companyHandler.getCompany())
		r.Get("/company/{companyID}/jobs", handlers.companyHandler.getCompanyJobs())
		r.Post("/company", handlers.companyHandler.createCompany())
		r.Put("/company/{companyID}", handlers.companyHandler.updateCompany())
		r.Delete("/company/{companyID}", handlers.companyHandler.deleteCompany())

		r.Get("/tasks", handlers.taskHandler.getAllTasks())
		r.Get("/task/{taskID}", handlers.taskHandler.getTask())
		r.Post("/task", handlers.taskHandler.createTask())
		r.Put("/task/{taskID}", handlers.taskHandler.updateTask())
		r.Delete("/task/{taskID}", handlers.taskHandler.deleteTask())

		r.Get("/jobs", handlers.jobHandler.getAllJobs())
		r.Get("/job/{jobID}", handlers.jobHandler.getJob())
		r.Post("/job", handlers.jobHandler.createJob())
		r.Put("/job/{jobID}", handlers.jobHandler.updateJob())
		r.Delete("/job/{jobID}", handlers.jobHandler.deleteJob())
	})
}
