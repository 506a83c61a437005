package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type subCategoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	service   *services.Service
}

func newSubCategoryHandler(db database.Database, service *services.Service) subCategoryHandler {
	logger := log.With().Str("handlerName", "subCategoryHandler").Logger()

	return subCategoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   service,
	}
}

func (h subCategoryHandler) getAllSubCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, database.SubCategorySortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		subCategories, err := h.db.SubCategoryRepo().FindAll(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "sub-categories", err))
			return
		}

		h.responder.WriteJSON(w, SubCategoryCollection{SubCategories: subCategories, Total: len(subCategories)})
	}
}

func (h subCategoryHandler) getSubCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subCategoryID, err := urlID(r, "subCategoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		subCategory, err := h.db.SubCategoryRepo().FindByID(r.Context(), subCategoryID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "sub-category", err))
			return
		}

		h.responder.WriteJSON(w, subCategory)
	}
}

// getSubCategoryProjects lists the projects tagged with a sub-category.
// public=true hides private projects and links as on /projects.
func (h subCategoryHandler) getSubCategoryProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subCategoryID, err := urlID(r, "subCategoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		opts, err := listOptions(r, database.ProjectSortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.db.SubCategoryRepo().FindByID(r.Context(), subCategoryID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "sub-category", err))
			return
		}

		projects, err := h.db.ProjectRepo().FindBySubCategory(r.Context(), subCategoryID, opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}
		if opts.PublicOnly {
			for _, project := range projects {
				services.RedactPrivateLinks(project)
			}
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

func (h subCategoryHandler) getSubCategoryArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subCategoryID, err := urlID(r, "subCategoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		opts, err := listOptions(r, database.ArticleSortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.db.SubCategoryRepo().FindByID(r.Context(), subCategoryID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "sub-category", err))
			return
		}

		articles, err := h.db.ArticleRepo().FindBySubCategory(r.Context(), subCategoryID, opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "articles", err))
			return
		}

		h.responder.WriteJSON(w, ArticleCollection{Articles: articles, Total: len(articles)})
	}
}

func (h subCategoryHandler) createSubCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subCategoryRequest
		if err := decodeJSON(w, r, h.logger, "sub-category", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateSubCategory(r.Context(), req.toModel(), req.CategoryIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

func (h subCategoryHandler) updateSubCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subCategoryID, err := urlID(r, "subCategoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req subCategoryRequest
		if err := decodeJSON(w, r, h.logger, "sub-category", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateSubCategory(r.Context(), subCategoryID, req.toModel(), req.CategoryIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h subCategoryHandler) deleteSubCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subCategoryID, err := urlID(r, "subCategoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteSubCategory(r.Context(), subCategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeDeleted(w, "sub-category")
	}
}
