package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type jobHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	service   *services.Service
}

func newJobHandler(db database.Database, service *services.Service) jobHandler {
	logger := log.With().Str("handlerName", "jobHandler").Logger()

	return jobHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   service,
	}
}

// getAllJobs lists jobs with their company and tasks, newest first
// @Summary Get all jobs
// @Tags Jobs
// @Produce json
// @Param order query string false "Comma separated sort keys, '-' prefix for descending"
// @Param public query bool false "Only public jobs"
// @Success 200 {object} JobCollection "List of jobs"
// @Router /jobs [get]
func (h jobHandler) getAllJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, database.JobSortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		jobs, err := h.db.JobRepo().FindAll(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "jobs", err))
			return
		}

		h.responder.WriteJSON(w, JobCollection{Jobs: jobs, Total: len(jobs)})
	}
}

// @Router /job/{jobID} [get]
func (h jobHandler) getJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := urlID(r, "jobID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		job, err := h.db.JobRepo().FindByID(r.Context(), jobID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "job", err))
			return
		}

		h.responder.WriteJSON(w, job)
	}
}

// createJob creates a job at an existing company
// @Summary Create job
// @Description Creates a job. start_date is required; end_date may not fall before it.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body jobRequest true "Job data"
// @Success 201 {object} models.Job "Created job"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid job data"
// @Router /job [post]
func (h jobHandler) createJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req jobRequest
		if err := decodeJSON(w, r, h.logger, "job", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		job, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateJob(r.Context(), job, req.TaskIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

// @Router /job/{jobID} [put]
func (h jobHandler) updateJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := urlID(r, "jobID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req jobRequest
		if err := decodeJSON(w, r, h.logger, "job", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		job, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateJob(r.Context(), jobID, job, req.TaskIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// @Router /job/{jobID} [delete]
func (h jobHandler) deleteJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := urlID(r, "jobID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteJob(r.Context(), jobID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeDeleted(w, "job")
	}
}
