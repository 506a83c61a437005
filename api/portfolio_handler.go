package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type portfolioHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	service     *services.Service
	startupTime time.Time
}

func newPortfolioHandler(db database.Database, service *services.Service, startupTime time.Time) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		service:     service,
		startupTime: startupTime,
	}
}

// getPortfolio returns everything the public landing page renders
// @Summary Get portfolio overview
// @Description Categories, sub-categories, public projects (private links removed), articles and public jobs, each in display order.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} services.Overview "Portfolio overview"
// @Router /portfolio [get]
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := h.service.Overview(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, overview)
	}
}

// getHealth reports uptime and whether the database answers
// @Router /health [get]
func (h portfolioHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("ping", "database", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":         "ok",
			"started_at":     h.startupTime.Format(time.RFC3339),
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
		})
	}
}
