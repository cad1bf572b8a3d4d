package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/services"
)

type JobHandler struct {
	svc *services.JobService
	log *zap.Logger
}

func NewJobHandler(svc *services.JobService, log *zap.Logger) *JobHandler {
	return &JobHandler{svc: svc, log: log}
}

func (h *JobHandler) List(ctx *gin.Context) {
	limit, offset, err := pagination(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	page, err := h.svc.List(limit, offset, ctx.Query("include"))
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, page)
}

func (h *JobHandler) Get(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid job ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	job, err := h.svc.GetByID(id, ctx.Query("include"))
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, job)
}

func (h *JobHandler) Create(ctx *gin.Context) {
	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := requireString(body, "title", "Job title is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireInt(body, "projectId", "Project ID is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	job, err := h.svc.Create(body)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusCreated, job)
}

func (h *JobHandler) Update(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid job ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	job, err := h.svc.Update(id, body)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, job)
}

func (h *JobHandler) Delete(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid job ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := h.svc.Delete(id); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
