package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type taskHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	service   *services.Service
}

func newTaskHandler(db database.Database, service *services.Service) taskHandler {
	logger := log.With().Str("handlerName", "taskHandler").Logger()

	return taskHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   service,
	}
}

func (h taskHandler) getAllTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, database.TaskSortFields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tasks, err := h.db.TaskRepo().FindAll(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "tasks", err))
			return
		}

		h.responder.WriteJSON(w, TaskCollection{Tasks: tasks, Total: len(tasks)})
	}
}

func (h taskHandler) getTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := urlID(r, "taskID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		task, err := h.db.TaskRepo().FindByID(r.Context(), taskID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "task", err))
			return
		}

		h.responder.WriteJSON(w, task)
	}
}

func (h taskHandler) createTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taskRequest
		if err := decodeJSON(w, r, h.logger, "task", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateTask(r.Context(), req.toModel())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

func (h taskHandler) updateTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := urlID(r, "taskID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req taskRequest
		if err := decodeJSON(w, r, h.logger, "task", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateTask(r.Context(), taskID, req.toModel())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h taskHandler) deleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := urlID(r, "taskID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteTask(r.Context(), taskID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeDeleted(w, "task")
	}
}
