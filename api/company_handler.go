package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type companyHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	service   *services.Service
}

func newCompanyHandler(db database.Database, service *services.Service) companyHandler {
	logger := log.With().Str("handlerName", "companyHandler").Logger()

	return companyHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   service,
	}
}

func (h companyHandler) getAllCompanies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, database.CompanySortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		companies, err := h.db.CompanyRepo().FindAll(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "companies", err))
			return
		}

		h.responder.WriteJSON(w, CompanyCollection{Companies: companies, Total: len(companies)})
	}
}

func (h companyHandler) getCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "companyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		company, err := h.db.CompanyRepo().FindByID(r.Context(), companyID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "company", err))
			return
		}

		h.responder.WriteJSON(w, company)
	}
}

// getCompanyJobs lists the jobs held at one company
// @Summary Get jobs at a company
// @Tags Companies
// @Produce json
// @Param companyID path string true "Company ID" format(uuid)
// @Param public query bool false "Only public jobs"
// @Success 200 {object} JobCollection "Jobs at the company"
// @Failure 404 {object} ErrorResponse "Not Found - Company not found"
// @Router /company/{companyID}/jobs [get]
func (h companyHandler) getCompanyJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "companyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		opts, err := listOptions(r, database.JobSortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.db.CompanyRepo().FindByID(r.Context(), companyID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "company", err))
			return
		}

		jobs, err := h.db.JobRepo().FindByCompany(r.Context(), companyID, opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "jobs", err))
			return
		}

		h.responder.WriteJSON(w, JobCollection{Jobs: jobs, Total: len(jobs)})
	}
}

func (h companyHandler) createCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req companyRequest
		if err := decodeJSON(w, r, h.logger, "company", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateCompany(r.Context(), req.toModel())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

func (h companyHandler) updateCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "companyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req companyRequest
		if err := decodeJSON(w, r, h.logger, "company", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateCompany(r.Context(), companyID, req.toModel())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteCompany removes a company together with its jobs
func (h companyHandler) deleteCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "companyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteCompany(r.Context(), companyID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeDeleted(w, "company")
	}
}
