package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	service   *services.Service
}

func newCategoryHandler(db database.Database, service *services.Service) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   service,
	}
}

// @Router /categories [get]
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, database.CategorySortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		categories, err := h.db.CategoryRepo().FindAll(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "categories", err))
			return
		}

		h.responder.WriteJSON(w, CategoryCollection{Categories: categories, Total: len(categories)})
	}
}

// @Router /category/{categoryID} [get]
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := urlID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.db.CategoryRepo().FindByID(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// getCategorySubCategories lists the sub-categories filed under a category
// @Router /category/{categoryID}/sub-categories [get]
func (h categoryHandler) getCategorySubCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := urlID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.db.CategoryRepo().FindByID(r.Context(), categoryID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "category", err))
			return
		}

		subCategories, err := h.db.SubCategoryRepo().FindByCategory(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "sub-categories", err))
			return
		}

		h.responder.WriteJSON(w, SubCategoryCollection{SubCategories: subCategories, Total: len(subCategories)})
	}
}

// @Router /category [post]
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := decodeJSON(w, r, h.logger, "category", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateCategory(r.Context(), req.toModel())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

// @Router /category/{categoryID} [put]
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := urlID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req categoryRequest
		if err := decodeJSON(w, r, h.logger, "category", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateCategory(r.Context(), categoryID, req.toModel())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// @Router /category/{categoryID} [delete]
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := urlID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeDeleted(w, "category")
	}
}
