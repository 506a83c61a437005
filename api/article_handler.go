package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type articleHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	service   *services.Service
}

func newArticleHandler(db database.Database, service *services.Service) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   service,
	}
}

// getAllArticles lists articles by weight, then newest post
// @Summary Get all articles
// @Tags Articles
// @Produce json
// @Param order query string false "Comma separated sort keys, '-' prefix for descending"
// @Success 200 {object} ArticleCollection "List of articles"
// @Router /articles [get]
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, database.ArticleSortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		articles, err := h.db.ArticleRepo().FindAll(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "articles", err))
			return
		}

		h.responder.WriteJSON(w, ArticleCollection{Articles: articles, Total: len(articles)})
	}
}

func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := urlID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.db.ArticleRepo().FindByID(r.Context(), articleID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "article", err))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req articleRequest
		if err := decodeJSON(w, r, h.logger, "article", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateArticle(r.Context(), article, req.SubCategoryIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

func (h articleHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := urlID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req articleRequest
		if err := decodeJSON(w, r, h.logger, "article", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateArticle(r.Context(), articleID, article, req.SubCategoryIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := urlID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteArticle(r.Context(), articleID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeDeleted(w, "article")
	}
}
